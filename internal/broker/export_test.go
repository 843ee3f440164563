package broker

// Subscribers returns the number of clients in the hotelID topic.
func (h *Hub) Subscribers(hotelID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.topics[hotelID])
}
