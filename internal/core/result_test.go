package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wellFormedGraph() *GraphData {
	return &GraphData{
		Nodes: []Node{
			{ID: "n1", Label: "某微博大V", Group: GroupSource, Time: "03-12 08:15"},
			{ID: "n2", Label: "本地论坛", Group: GroupSpreader, Time: "03-12 09:40"},
			{ID: "n3", Label: "官方辟谣账号", Group: GroupDebunker, Time: "03-12 14:02"},
		},
		Links: []Link{
			{Source: "n1", Target: "n2", Value: 3},
			{Source: "n3", Target: "n1", Value: 5},
		},
	}
}

func TestNormalize_WellFormedGraphKept(t *testing.T) {
	r := AnalysisResult{Message: "verdict", IsRumor: true, GraphData: wellFormedGraph()}
	r.Normalize()

	require.NotNil(t, r.GraphData)
	assert.Len(t, r.GraphData.Nodes, 3)
	assert.Len(t, r.GraphData.Links, 2)
}

func TestNormalize_NilGraphStaysNil(t *testing.T) {
	r := AnalysisResult{Message: "verdict", IsRumor: false}
	r.Normalize()
	assert.Nil(t, r.GraphData)
}

func TestNormalize_EmptyNodesDropsGraph(t *testing.T) {
	r := AnalysisResult{
		GraphData: &GraphData{
			Nodes: nil,
			Links: []Link{{Source: "a", Target: "b", Value: 1}},
		},
	}
	r.Normalize()
	assert.Nil(t, r.GraphData)
}

func TestNormalize_DanglingLinkDropsGraph(t *testing.T) {
	g := wellFormedGraph()
	g.Links = append(g.Links, Link{Source: "n1", Target: "ghost", Value: 2})

	r := AnalysisResult{GraphData: g}
	r.Normalize()
	assert.Nil(t, r.GraphData)
}

func TestNormalize_DuplicateNodeIDDropsGraph(t *testing.T) {
	g := wellFormedGraph()
	g.Nodes = append(g.Nodes, Node{ID: "n1", Label: "重复", Group: GroupSpreader, Time: "03-12 10:00"})

	r := AnalysisResult{GraphData: g}
	r.Normalize()
	assert.Nil(t, r.GraphData)
}

func TestNormalize_EmptyNodeIDDropsGraph(t *testing.T) {
	g := wellFormedGraph()
	g.Nodes[1].ID = ""

	r := AnalysisResult{GraphData: g}
	r.Normalize()
	assert.Nil(t, r.GraphData)
}

func TestNormalize_GraphWithoutLinksIsValid(t *testing.T) {
	r := AnalysisResult{
		GraphData: &GraphData{
			Nodes: []Node{{ID: "solo", Label: "起点", Group: GroupSource, Time: "01-01 00:00"}},
		},
	}
	r.Normalize()
	assert.NotNil(t, r.GraphData)
}

func TestAnalysisResult_JSONShape(t *testing.T) {
	r := AnalysisResult{Message: "**谣言**", IsRumor: true, GraphData: nil}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	// graphData must be present (null), not omitted: the front-end keys on it.
	assert.JSONEq(t, `{"message":"**谣言**","isRumor":true,"graphData":null}`, string(data))
}
