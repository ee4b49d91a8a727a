package analysis

import "google.golang.org/genai"

// resultSchema constrains the model reply to the AnalysisResult shape.
// graphData is declared required-but-nullable: the model must always decide
// about it, but may decline with null. A reply that omits it anyway is a
// recoverable anomaly handled by normalization, not a hard failure.
func resultSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"message": {
				Type:        genai.TypeString,
				Description: "Markdown 格式的分析结论",
			},
			"isRumor": {
				Type:        genai.TypeBoolean,
				Description: "该信息是否为谣言",
			},
			"graphData": {
				Type:     genai.TypeObject,
				Nullable: genai.Ptr(true),
				Properties: map[string]*genai.Schema{
					"nodes": {
						Type:  genai.TypeArray,
						Items: nodeSchema(),
					},
					"links": {
						Type:  genai.TypeArray,
						Items: linkSchema(),
					},
				},
				Required: []string{"nodes", "links"},
			},
		},
		Required: []string{"message", "isRumor", "graphData"},
	}
}

func nodeSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id": {
				Type:        genai.TypeString,
				Description: "节点唯一标识",
			},
			"label": {
				Type:        genai.TypeString,
				Description: "节点名称",
			},
			"group": {
				Type:        genai.TypeInteger,
				Description: "1=信息源头，2=传播者，3=辟谣者",
			},
			"time": {
				Type:        genai.TypeString,
				Description: `"MM-DD HH:mm" 格式的时间戳`,
			},
		},
		Required: []string{"id", "label", "group", "time"},
	}
}

func linkSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"source": {
				Type:        genai.TypeString,
				Description: "起点节点 id",
			},
			"target": {
				Type:        genai.TypeString,
				Description: "终点节点 id",
			},
			"value": {
				Type:        genai.TypeInteger,
				Description: "1 到 5 的传播强度",
			},
		},
		Required: []string{"source", "target", "value"},
	}
}
