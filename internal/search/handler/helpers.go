package handler

import (
	"math"
	"strconv"
	"strings"

	"arfigyelo-search/internal/search/model"
)

func optsFromValues(limit, minScore string) model.Options {
	opts := model.Options{Limit: atoi(limit, model.DefaultLimit)}
	ms := toFloat(minScore, model.DefaultMinScore)
	if ms == 0 {
		ms = -1 // explicit zero threshold, keep everything
	}
	opts.MinScore = ms
	return opts
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func toFloat(s string, def float64) float64 {
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

func toBool(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}
