package bayes

import (
	"encoding/json"
	"fmt"
	"math"
)

// jsonFloat is a float64 that survives JSON encoding when non-finite.
// encoding/json rejects IEEE infinities and NaN, but an infinite Bayes
// factor is a valid extreme result, so non-finite values are encoded as
// the strings "Infinity", "-Infinity" and "NaN".
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsInf(v, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Infinity"`), nil
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	}
	return json.Marshal(v)
}

func (f *jsonFloat) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch s {
		case "Infinity":
			*f = jsonFloat(math.Inf(1))
		case "-Infinity":
			*f = jsonFloat(math.Inf(-1))
		case "NaN":
			*f = jsonFloat(math.NaN())
		default:
			return fmt.Errorf("invalid float value %q", s)
		}
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = jsonFloat(v)
	return nil
}

// MarshalJSON encodes the result with a non-finite-safe Bayes factor, so
// ill-conditioned results remain reportable over every JSON surface.
func (r Result) MarshalJSON() ([]byte, error) {
	type Alias Result
	return json.Marshal(struct {
		BayesFactor jsonFloat `json:"bayes_factor"`
		Alias
	}{
		BayesFactor: jsonFloat(r.BayesFactor),
		Alias:       Alias(r),
	})
}

// UnmarshalJSON is the inverse of MarshalJSON
func (r *Result) UnmarshalJSON(data []byte) error {
	type Alias Result
	aux := struct {
		BayesFactor jsonFloat `json:"bayes_factor"`
		*Alias
	}{
		Alias: (*Alias)(r),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.BayesFactor = float64(aux.BayesFactor)
	return nil
}
