package rpc

import "github.com/daniilsolovey/newsroom/internal/newsportal"

type NewsSummaries []NewsSummary

type Categories []Category

type Tags []Tag

type FeaturedList []FeaturedNews

func mapList[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewNewsSummaries(in []newsportal.News) NewsSummaries {
	return mapList(in, NewNewsSummary)
}

func NewCategories(in []newsportal.Category) Categories {
	return mapList(in, NewCategory)
}

func NewTags(in []newsportal.Tag) Tags {
	return mapList(in, NewTag)
}

func NewFeaturedList(in []newsportal.FeaturedNews) FeaturedList {
	return mapList(in, NewFeaturedNews)
}
