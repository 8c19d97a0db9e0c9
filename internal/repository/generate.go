package repository

//go:generate mockgen -source=querier.go -destination=mock_querier.go -package=repository
