package dto

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

// ProductChangedEvent is published after a correction is written.
type ProductChangedEvent struct {
	ProductID   string            `json:"product_id"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	SubCategory string            `json:"sub_category"`
	Fields      []string          `json:"fields"`
	Source      string            `json:"source"`
	Specs       map[string]string `json:"specifications,omitempty"`
}
