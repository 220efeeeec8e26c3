package graph

// City node indices in the graph returned by Cities.
const (
	Zakho = iota
	Duhok
	Erbil
	Silemani
)

// CityNames lists the cities in node-index order.
var CityNames = []string{"Zakho", "Duhok", "Erbil", "Silemani"}

// Cities returns the fixed city graph: Zakho-Duhok, Duhok-Erbil, Erbil-Silemani.
func Cities() *Graph {
	g := New(CityNames)
	g.AddUndirectedEdge(Zakho, Duhok)
	g.AddUndirectedEdge(Duhok, Erbil)
	g.AddUndirectedEdge(Erbil, Silemani)
	return g
}
