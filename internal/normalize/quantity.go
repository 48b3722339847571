package normalize

import "encoding/json"

// Quantity carries the availability value of a price entry. The supplier
// reports either an exact count or an "at least N" bucket; only the known
// buckets become numbers, anything else stays the raw string and is sent to
// the marketplace unchanged.
type Quantity struct {
	Units    int
	Bucketed bool
	Raw      string
}

func ParseQuantity(text string) Quantity {
	switch text {
	case "20+":
		return Quantity{Units: 20, Bucketed: true}
	case "10+":
		return Quantity{Units: 10, Bucketed: true}
	}
	return Quantity{Raw: text}
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	if q.Bucketed {
		return json.Marshal(q.Units)
	}
	return json.Marshal(q.Raw)
}
