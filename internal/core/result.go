// Package core defines the domain types shared by the analysis client,
// the HTTP API and the CLI.
package core

// Node groups in a propagation graph.
const (
	GroupSource   = 1 // origin of the claim
	GroupSpreader = 2 // account that amplified it
	GroupDebunker = 3 // account that refuted it
)

// Link weights are bounded to keep the front-end force layout readable.
const (
	LinkValueMin = 1
	LinkValueMax = 5
)

// AnalysisResult is the verdict returned for a single claim. It is built
// fresh per request and never mutated after being returned.
type AnalysisResult struct {
	// Message is the Markdown verdict shown to the user.
	Message string `json:"message"`
	// IsRumor reports the model's classification of the claim.
	IsRumor bool `json:"isRumor"`
	// GraphData describes how the claim propagated. Nil when the model
	// could not produce a well-formed graph.
	GraphData *GraphData `json:"graphData"`
}

// GraphData is a propagation graph. Node and link order is preserved as
// returned by the model.
type GraphData struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// Node is a single participant in the propagation of a claim.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	// Group is one of GroupSource, GroupSpreader, GroupDebunker.
	Group int `json:"group"`
	// Time is a "MM-DD HH:mm" timestamp.
	Time string `json:"time"`
}

// Link is a directed propagation edge between two nodes.
type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Value  int    `json:"value"`
}

// Normalize enforces the graph invariant: GraphData is either fully
// well-formed or nil. Partially populated graphs (no nodes, duplicate node
// ids, links pointing at unknown nodes) are repaired by dropping the graph
// entirely rather than surfacing a broken one.
func (r *AnalysisResult) Normalize() {
	if r.GraphData != nil && !r.GraphData.wellFormed() {
		r.GraphData = nil
	}
}

func (g *GraphData) wellFormed() bool {
	if len(g.Nodes) == 0 {
		return false
	}

	ids := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID == "" {
			return false
		}
		if _, dup := ids[n.ID]; dup {
			return false
		}
		ids[n.ID] = struct{}{}
	}

	for _, l := range g.Links {
		if _, ok := ids[l.Source]; !ok {
			return false
		}
		if _, ok := ids[l.Target]; !ok {
			return false
		}
	}

	return true
}
