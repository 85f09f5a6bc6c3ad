package newsportal

import (
	"github.com/daniilsolovey/newsroom/internal/db"
)

type NewsList []News

type Categories []Category

type Tags []Tag

func NewNews(in *db.News) News {
	news := News{News: *in}
	if in.Category != nil {
		news.Category = NewCategory(in.Category)
	}
	return news
}

func NewCategory(in *db.Category) Category {
	return Category{Category: *in}
}

func NewTag(in *db.Tag) Tag {
	return Tag{Tag: *in}
}

func NewNewsList(in []db.News) NewsList {
	out := make(NewsList, len(in))
	for i := range in {
		out[i] = NewNews(&in[i])
	}
	return out
}

func NewCategories(in []db.Category) Categories {
	out := make(Categories, len(in))
	for i := range in {
		out[i] = NewCategory(&in[i])
	}
	return out
}

func NewTags(in []db.Tag) Tags {
	out := make(Tags, len(in))
	for i := range in {
		out[i] = NewTag(&in[i])
	}
	return out
}

func (ll Tags) IndexByID() map[int]Tag {
	index := make(map[int]Tag, len(ll))
	for _, t := range ll {
		index[t.ID] = t
	}
	return index
}

func (ll NewsList) IndexByID() map[int]News {
	index := make(map[int]News, len(ll))
	for _, n := range ll {
		index[n.ID] = n
	}
	return index
}

func (ll NewsList) UniqueTagIDs() []int {
	seen := make(map[int]struct{})
	var ids []int
	for _, n := range ll {
		for _, id := range n.TagIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

// SetTags resolves TagIDs against tags. Unknown or hidden tags are dropped.
func (ll NewsList) SetTags(tags Tags) {
	tagIndex := tags.IndexByID()
	for i := range ll {
		ll[i].Tags = make([]Tag, 0, len(ll[i].TagIDs))
		for _, tagID := range ll[i].TagIDs {
			if tag, ok := tagIndex[tagID]; ok {
				ll[i].Tags = append(ll[i].Tags, tag)
			}
		}
	}
}
