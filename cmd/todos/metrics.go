package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	usersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "todos_users_registered_total",
		Help: "The total number of registered users",
	})

	todosCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "todos_created_total",
		Help: "The total number of created to-dos",
	})

	perf = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "todos_http_request_duration_seconds",
		Help: "Latency of the api requests",
	}, []string{"method", "route", "status"})
)
