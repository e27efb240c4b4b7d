package entities

import "dispatch/pkg/geo"

type Point = geo.Point

// Place точка с человекочитаемой подписью (адрес, название склада).
type Place struct {
	Point
	Label string
}

// Route маршрут от провайдера маршрутизации либо прямая интерполяция.
type Route struct {
	Points          []Point
	DistanceKm      float64
	DurationMinutes float64
	Fallback        bool
}
