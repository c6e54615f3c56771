package payment

import (
	"errors"
	"fmt"
)

// Money is a two-decimal currency amount held in subunits (paise for INR).
type Money struct {
	subunits int64
}

func NewMoney(subunits int64) (Money, error) {
	if subunits < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{subunits: subunits}, nil
}

func (m Money) Subunits() int64 {
	return m.subunits
}

func (m Money) Units() float64 {
	return float64(m.subunits) / 100.0
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.subunits/100, m.subunits%100)
}
