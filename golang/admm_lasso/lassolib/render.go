package lassolib

import (
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
)

//DrawGraph builds a layered graph of the active set along the regularization
//path: one box node per surviving feature at every weight, with an edge
//connecting a feature to itself on the next level. Features that fall out of
//the model simply stop appearing, which makes the elimination order visible.
func (pathResult *PathResult) DrawGraph() (*graphviz.Graphviz, *cgraph.Graph, error) {
	graphViz := graphviz.New()
	graph, err := graphViz.Graph()
	if err != nil {
		return nil, nil, err
	}

	var previous map[int]*cgraph.Node
	for k, lambda := range pathResult.Lambdas {
		current := make(map[int]*cgraph.Node)
		for _, j := range pathResult.ActiveSet(k) {
			node, err := graph.CreateNode(fmt.Sprintf("%s@%d", pathResult.featureName(j), k))
			if err != nil {
				return nil, nil, err
			}
			node.Set("shape", "box")
			node.Set("label", fmt.Sprintf("%s\nlambda %.4g\n%.4g", pathResult.featureName(j), lambda, pathResult.Sparse.At(k, j)))
			current[j] = node

			if previousNode, ok := previous[j]; ok {
				if _, err := graph.CreateEdge("", previousNode, node); err != nil {
					return nil, nil, err
				}
			}
		}
		previous = current
	}

	return graphViz, graph, nil
}

//RenderPath renders the active-set graph of the path into a figure file.
func (pathResult *PathResult) RenderPath(figureType, fileName string) error {
	graphvizType, ok := map[string]graphviz.Format{
		"png": graphviz.PNG,
		"svg": graphviz.SVG,
		"jpg": graphviz.JPG,
	}[figureType]
	if !ok {
		return fmt.Errorf("lassolib: unsupported figure type %q", figureType)
	}

	graphViz, graph, err := pathResult.DrawGraph()
	if err != nil {
		return err
	}
	return graphViz.RenderFilename(graph, graphvizType, fileName)
}

func defaultFeatureName(j int) string {
	return fmt.Sprintf("f_%d", j)
}
