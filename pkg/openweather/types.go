package openweather

import (
	"encoding/json"
	"strings"
)

// Report is the current weather for a city.
type Report struct {
	City        string
	Description string
	Temp        float64
	FeelsLike   float64
}

type currentResponse struct {
	Cod     json.RawMessage `json:"cod"`
	Message string          `json:"message"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
	} `json:"main"`
}

// ok reports whether cod is 200. The API sends it as a number on success and
// as a string on errors.
func (r currentResponse) ok() bool {
	return strings.Trim(string(r.Cod), `"`) == "200"
}
