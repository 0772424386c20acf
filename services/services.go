package services

import (
	"notehub-server/events"
	"notehub-server/notes"
	"notehub-server/relations"
	"notehub-server/store"
)

// Service bundles the handles the HTTP handlers work through
type Service struct {
	Store *store.Store
	Graph *relations.Graph
	Notes *notes.Notes
	Hub   *events.Hub
}

// New builds the service layer
func New(s *store.Store, g *relations.Graph, n *notes.Notes, h *events.Hub) *Service {
	return &Service{Store: s, Graph: g, Notes: n, Hub: h}
}
