package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"blogforge/internal/domain/entity"
)

// BlogIndexer mirrors blog documents into Elasticsearch for relevance
// search. Indexing is best-effort: Postgres stays the source of truth and
// the paginated list endpoints never depend on the index. A nil indexer
// (or one without a client) is a no-op.
type BlogIndexer struct {
	ES        *elasticsearch.Client
	IndexName string
	Logger    *logrus.Logger
}

func NewBlogIndexer(es *elasticsearch.Client, index string, logger *logrus.Logger) *BlogIndexer {
	return &BlogIndexer{ES: es, IndexName: index, Logger: logger}
}

func (ix *BlogIndexer) enabled() bool {
	return ix != nil && ix.ES != nil && ix.IndexName != ""
}

func (ix *BlogIndexer) Index(ctx context.Context, b *entity.Blog) error {
	if !ix.enabled() || b == nil {
		return nil
	}
	doc := map[string]any{
		"id":         b.ID(),
		"title":      b.Title(),
		"content":    b.Content(),
		"author_id":  b.AuthorID(),
		"created_at": b.CreatedAt().Format(time.RFC3339Nano),
		"updated_at": b.UpdatedAt().Format(time.RFC3339Nano),
	}
	body, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: ix.IndexName, DocumentID: b.ID(), Body: strings.NewReader(string(body)), Refresh: "false"}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, ix.ES)
	if err != nil {
		if ix.Logger != nil {
			ix.Logger.WithError(err).WithField("blog_id", b.ID()).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && ix.Logger != nil {
		ix.Logger.WithField("status", res.Status()).WithField("blog_id", b.ID()).Warn("es index response error")
	}
	return nil
}

func (ix *BlogIndexer) Remove(ctx context.Context, blogID string) error {
	if !ix.enabled() {
		return nil
	}
	req := esapi.DeleteRequest{Index: ix.IndexName, DocumentID: blogID}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, ix.ES)
	if err != nil {
		if ix.Logger != nil {
			ix.Logger.WithError(err).WithField("blog_id", blogID).Warn("es delete failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	return nil
}

// Search runs a multi_match query over title and content and returns the
// raw documents.
func (ix *BlogIndexer) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if !ix.enabled() {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "content"},
			},
		},
		"size": size,
	}
	body, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := ix.ES.Search(
		ix.ES.Search.WithContext(c),
		ix.ES.Search.WithIndex(ix.IndexName),
		ix.ES.Search.WithBody(strings.NewReader(string(body))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
