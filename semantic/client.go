package semantic

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/gradctl/degreepath/catalog"
	openai "github.com/sashabaranov/go-openai"
)

// Client implements recommend.Scorer using OpenAI's embeddings endpoint.
// The zero value is not usable; construct with NewClient.
type Client struct {
	oai    *openai.Client
	model  openai.EmbeddingModel
	cache  sync.Map // text -> []float32
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithModel overrides the embedding model (default openai.AdaEmbeddingV2).
func WithModel(m openai.EmbeddingModel) Option {
	return func(c *Client) { c.model = m }
}

// WithLogger overrides the client's structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient returns a Client authenticated with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		oai:    openai.NewClient(apiKey),
		model:  openai.AdaEmbeddingV2,
		logger: slog.Default(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Rank implements recommend.Scorer (spec §6.5): courses are ranked by
// cosine similarity between an embedding of customTags and an embedding
// of each course's text. An embedding failure is logged as a warning,
// not returned: if the tag embedding fails the order is returned
// unchanged, and a course whose own embedding fails is scored 0.
// Embeddings are cached per process (never persisted) keyed by the
// input text, so repeated Rank calls across templates that share
// candidate courses or tag sets cost one API round trip each.
func (c *Client) Rank(template *catalog.Template, candidates []*catalog.Course, taken catalog.CourseSet, customTags []string) []*catalog.Course {
	if len(customTags) == 0 || len(candidates) == 0 {
		return candidates
	}

	ctx := context.Background()

	query, err := c.embed(ctx, strings.Join(customTags, " "))
	if err != nil {
		c.logger.Warn("semantic: query embedding failed, leaving order unchanged",
			"template", template.Name, "error", err)
		return candidates
	}

	vectors := make(map[string][]float32, len(candidates))
	for _, course := range candidates {
		vec, err := c.embed(ctx, courseText(course))
		if err != nil {
			c.logger.Warn("semantic: course embedding failed",
				"course", course.Key(), "error", err)
			continue
		}
		vectors[course.Key()] = vec
	}

	return rankBySimilarity(query, candidates, vectors)
}

func (c *Client) embed(ctx context.Context, text string) ([]float32, error) {
	if v, ok := c.cache.Load(text); ok {
		return v.([]float32), nil
	}

	resp, err := c.oai.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: c.model,
	})
	if err != nil {
		return nil, fmt.Errorf("semantic: create embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, ErrEmptyEmbedding
	}

	vec := resp.Data[0].Embedding
	c.cache.Store(text, vec)
	return vec, nil
}

// courseText renders a course as the text embedded for similarity
// ranking: its subject, id and name plus every attribute, so tag-relevance can match
// both the catalog title and concentration/cross-list metadata.
func courseText(course *catalog.Course) string {
	var b strings.Builder
	b.WriteString(course.Subject)
	b.WriteByte(' ')
	b.WriteString(course.ID)
	b.WriteByte(' ')
	b.WriteString(course.Name)
	for _, a := range course.Attrs.All() {
		b.WriteByte(' ')
		b.WriteString(string(a))
	}
	return b.String()
}

// rankBySimilarity stable-sorts candidates descending by cosine
// similarity to query, using each course's vectors entry (0 for a
// course whose embedding failed, so it ranks below every course with a
// positive similarity, without panicking). The stable sort preserves candidates' incoming
// bind-count order among equal similarities, matching spec §4.5 step
// 4's "stable-merge by that score" framing.
func rankBySimilarity(query []float32, candidates []*catalog.Course, vectors map[string][]float32) []*catalog.Course {
	out := make([]*catalog.Course, len(candidates))
	copy(out, candidates)

	scores := make(map[string]float64, len(out))
	for _, course := range out {
		scores[course.Key()] = cosineSimilarity(query, vectors[course.Key()])
	}

	sort.SliceStable(out, func(i, j int) bool {
		return scores[out[i].Key()] > scores[out[j].Key()]
	})
	return out
}
