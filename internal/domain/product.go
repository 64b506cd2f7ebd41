package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

type Product struct {
	ID            string     `dynamodbav:"id"              json:"id"`
	Name          string     `dynamodbav:"name"            json:"name"`
	Price         float64    `dynamodbav:"price"           json:"price"`
	Quantity      int        `dynamodbav:"quantity"        json:"quantity"`
	Category      string     `dynamodbav:"category"        json:"category,omitempty"`
	InStock       bool       `dynamodbav:"in_stock"        json:"inStock"`
	ExpiryDate    *time.Time `dynamodbav:"expiry_date,omitempty" json:"expiryDate,omitempty"`
	MinStockLevel int        `dynamodbav:"min_stock_level" json:"minStockLevel"`
	CreatedAt     time.Time  `dynamodbav:"created_at"      json:"createdAt"`
	UpdatedAt     time.Time  `dynamodbav:"updated_at"      json:"updatedAt"`
}

// ProductRequest is the create/update payload. Numeric fields accept
// either JSON numbers or numeric strings; unparsable input coerces to
// zero rather than failing, matching the form-driven clients this API
// was built for.
type ProductRequest struct {
	Name          string `json:"name"`
	Price         Number `json:"price"`
	Quantity      Number `json:"quantity"`
	Category      string `json:"category"`
	InStock       bool   `json:"inStock"`
	ExpiryDate    Date   `json:"expiryDate"`
	MinStockLevel Number `json:"minStockLevel"`
}

type AdjustStockRequest struct {
	ProductID  string `json:"productId"`
	Adjustment Number `json:"adjustment"`
	Reason     string `json:"reason"`
}

// Number is a float64 that unmarshals from a JSON number or a numeric
// string. Anything that fails to parse becomes 0; unmarshalling never
// returns an error.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = Number(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*n = Number(f)
			return nil
		}
	}

	*n = 0
	return nil
}

func (n Number) Float() float64 { return float64(n) }

// Int truncates toward zero, same as the store does for quantities.
func (n Number) Int() int { return int(n) }

// Date unmarshals from an RFC 3339 timestamp or a YYYY-MM-DD date.
// Blank or unparsable input yields a nil Value, meaning "no expiry".
type Date struct {
	Value *time.Time
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func (d *Date) UnmarshalJSON(data []byte) error {
	d.Value = nil

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Value = &t
			return nil
		}
	}
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(d.Value.Format(time.RFC3339))
}
