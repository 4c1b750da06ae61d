package server

import "encoding/json"

// statusVersion and statusPlayers mirror the nested objects a status JSON document
// needs (spec.md §4.3.1 supplemented shape); grounded on original_source's
// StatusResponse/Version/Players (protocol-network/src/packet/status.rs), adapted
// from serde_json struct tags to encoding/json.
type statusVersion struct {
	Name     string `json:"name"`
	Protocol int    `json:"protocol"`
}

type statusPlayers struct {
	Max    int `json:"max"`
	Online int `json:"online"`
}

type statusDescription struct {
	Text string `json:"text"`
}

type statusResponse struct {
	Version     statusVersion     `json:"version"`
	Players     statusPlayers     `json:"players"`
	Description statusDescription `json:"description"`
}

// buildStatusJSON renders the server-list-ping document sent in StatusResponse.
func buildStatusJSON(maxPlayers, onlinePlayers int) string {
	doc := statusResponse{
		Version:     statusVersion{Name: "1.20.6", Protocol: 766},
		Players:     statusPlayers{Max: maxPlayers, Online: onlinePlayers},
		Description: statusDescription{Text: "A Go Minecraft protocol server"},
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return `{"version":{"name":"1.20.6","protocol":766},"players":{"max":0,"online":0},"description":{"text":""}}`
	}
	return string(b)
}
