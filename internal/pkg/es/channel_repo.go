package es

import (
	"context"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/goccy/go-json"
)

const maxSearchSize = 50

type ChannelRepo interface {
	IndexChannel(ctx context.Context, channel *ChannelES) error
	DeleteChannel(ctx context.Context, id uint64) error
	Search(ctx context.Context, keyword string, size int) ([]*ChannelES, error)
}

type ChannelRepoImpl struct {
	client *elasticsearch.TypedClient
}

func NewChannelRepo(client *elasticsearch.TypedClient) ChannelRepo {
	return &ChannelRepoImpl{client: client}
}

func (s *ChannelRepoImpl) IndexChannel(ctx context.Context, channel *ChannelES) error {
	_, err := s.client.Index(ChannelIndex).
		Id(strconv.FormatUint(channel.ID, 10)).
		Document(channel).
		Do(ctx)
	return err
}

func (s *ChannelRepoImpl) DeleteChannel(ctx context.Context, id uint64) error {
	_, err := s.client.Delete(ChannelIndex, strconv.FormatUint(id, 10)).Do(ctx)
	return err
}

// Search matches the keyword against channel name and description,
// restricted to active channels, ranked by relevance then audience.
func (s *ChannelRepoImpl) Search(ctx context.Context, keyword string, size int) ([]*ChannelES, error) {
	if size <= 0 || size > maxSearchSize {
		size = maxSearchSize
	}

	boolQuery := &types.BoolQuery{
		Must: []types.Query{{
			MultiMatch: &types.MultiMatchQuery{
				Query:  keyword,
				Fields: []string{"name^3", "description"},
			},
		}},
		Filter: []types.Query{{
			Term: map[string]types.TermQuery{
				"is_active": {Value: true},
			},
		}},
	}

	res, err := s.client.Search().
		Index(ChannelIndex).
		Query(&types.Query{Bool: boolQuery}).
		Size(size).
		Do(ctx)
	if err != nil {
		return nil, err
	}

	channels := make([]*ChannelES, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var channel ChannelES
		if err := json.Unmarshal(hit.Source_, &channel); err != nil {
			return nil, err
		}
		channels = append(channels, &channel)
	}
	return channels, nil
}
