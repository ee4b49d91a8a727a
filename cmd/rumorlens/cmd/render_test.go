package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rumorlens/internal/core"
)

func TestGroupName(t *testing.T) {
	assert.Equal(t, "源头", groupName(core.GroupSource))
	assert.Equal(t, "传播", groupName(core.GroupSpreader))
	assert.Equal(t, "辟谣", groupName(core.GroupDebunker))
	assert.Equal(t, "未知", groupName(0))
	assert.Equal(t, "未知", groupName(9))
}

func TestRenderGraph_ListsNodesAndLinks(t *testing.T) {
	g := &core.GraphData{
		Nodes: []core.Node{
			{ID: "n1", Label: "匿名账号", Group: core.GroupSource, Time: "03-12 08:15"},
			{ID: "n2", Label: "官方媒体", Group: core.GroupDebunker, Time: "03-12 14:30"},
		},
		Links: []core.Link{
			{Source: "n2", Target: "n1", Value: 5},
		},
	}

	out := renderGraph(g)

	assert.Contains(t, out, "传播路径")
	assert.Contains(t, out, "匿名账号")
	assert.Contains(t, out, "03-12 08:15")
	assert.Contains(t, out, "官方媒体 → 匿名账号")
	assert.Contains(t, out, "强度 5")
}

func TestRenderGraph_NoLinks(t *testing.T) {
	g := &core.GraphData{
		Nodes: []core.Node{{ID: "n1", Label: "起点", Group: core.GroupSource, Time: "01-01 00:00"}},
	}

	out := renderGraph(g)
	assert.Contains(t, out, "起点")
	assert.NotContains(t, out, "→")
}

func TestRenderResult_RumorBadge(t *testing.T) {
	out := renderResult(core.AnalysisResult{Message: "**假的**", IsRumor: true})
	assert.Contains(t, out, "疑似谣言")
}

func TestRenderResult_InfoBadgeAndGraph(t *testing.T) {
	out := renderResult(core.AnalysisResult{
		Message: "属实",
		IsRumor: false,
		GraphData: &core.GraphData{
			Nodes: []core.Node{{ID: "a", Label: "节点", Group: core.GroupSpreader, Time: "02-02 02:02"}},
		},
	})

	assert.Contains(t, out, "分析结果")
	assert.Contains(t, out, "节点")
}

func TestRenderMarkdown_FallsBackOnRawText(t *testing.T) {
	// Whatever the renderer does, the content must survive.
	out := renderMarkdown("plain text verdict")
	assert.Contains(t, out, "plain text verdict")
}
