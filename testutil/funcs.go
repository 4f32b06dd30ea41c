// Package testutil provides fixture tool functions for agents tests and examples.
package testutil

import (
	"context"
	"fmt"

	"github.com/armbues/agents"
)

// Add returns an "add" fixture that sums two numbers.
func Add() *agents.Func {
	return &agents.Func{
		Name: "add",
		Doc:  "Add two numbers and return the sum.",
		Params: []agents.Param{
			{Name: "a", Type: "float", Description: "The first number."},
			{Name: "b", Type: "float", Description: "The second number."},
		},
		Fn: func(_ context.Context, args map[string]any) (any, error) {
			a, err := asFloat(args["a"])
			if err != nil {
				return nil, err
			}
			b, err := asFloat(args["b"])
			if err != nil {
				return nil, err
			}
			return map[string]any{"sum": a + b}, nil
		},
	}
}

// SearchLocation returns a "search_location" fixture with canned
// coordinates for a few known city names.
func SearchLocation() *agents.Func {
	coords := map[string][]float64{
		"Berlin": {52.52, 13.41},
		"Lisbon": {38.72, -9.14},
	}
	return &agents.Func{
		Name: "search_location",
		Doc:  "Get the latitude and longitude for a given location.",
		Params: []agents.Param{
			{Name: "name", Type: "str", Description: "The name of the location to search for."},
		},
		Fn: func(_ context.Context, args map[string]any) (any, error) {
			name, _ := args["name"].(string)
			c, ok := coords[name]
			if !ok {
				return nil, fmt.Errorf("location %q not found", name)
			}
			return map[string]any{"latitude": c[0], "longitude": c[1]}, nil
		},
	}
}

// WeatherCurrent returns a "weather_current" fixture with a canned
// weather report.
func WeatherCurrent() *agents.Func {
	return &agents.Func{
		Name: "weather_current",
		Doc:  "Get the current weather for a given location.",
		Params: []agents.Param{
			{Name: "latitude", Type: "float", Description: "The latitude of the location."},
			{Name: "longitude", Type: "float", Description: "The longitude of the location."},
		},
		Fn: func(_ context.Context, args map[string]any) (any, error) {
			lat, err := asFloat(args["latitude"])
			if err != nil {
				return nil, err
			}
			lon, err := asFloat(args["longitude"])
			if err != nil {
				return nil, err
			}
			return map[string]any{
				"latitude":    lat,
				"longitude":   lon,
				"temperature": 21.5,
				"description": "Partly cloudy",
			}, nil
		},
	}
}

// asFloat accepts the numeric representations both strategies produce:
// float64 from JSON payloads, int64 from sandbox integers.
func asFloat(v any) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	case int:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}
