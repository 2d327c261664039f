package server

import (
	"net/http"
)

func SetupRoutes(resultsHandler *ResultsService) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /results/{version}", resultsHandler.GetVersionSummary)

	return mux
}
