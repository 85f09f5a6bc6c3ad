package rest

import "github.com/daniilsolovey/newsroom/internal/newsportal"

type NewsSummaries []NewsSummary

type Categories []Category

type Tags []Tag

func NewNewsSummaries(in []newsportal.News) NewsSummaries {
	return Map(in, NewNewsSummary)
}

func NewCategories(in []newsportal.Category) Categories {
	return Map(in, NewCategory)
}

func NewTags(in []newsportal.Tag) Tags {
	return Map(in, NewTag)
}

func NewFeaturedList(in []newsportal.FeaturedNews) []FeaturedNews {
	return Map(in, NewFeaturedNews)
}
