package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mentora/ent"
	enttopic "github.com/abhisek/mentora/ent/topic"
)

type topicRepo struct {
	client *ent.Client
}

func (r *topicRepo) GetTopic(ctx context.Context, topicID string) (*Topic, error) {
	row, err := r.client.Topic.Query().
		Where(enttopic.TopicID(topicID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query topic %s: %w", topicID, err)
	}
	return &Topic{ID: row.TopicID, Title: row.Title, Content: row.Content}, nil
}

func (r *topicRepo) SaveTopic(ctx context.Context, t *Topic) error {
	existing, err := r.client.Topic.Query().
		Where(enttopic.TopicID(t.ID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query topic %s: %w", t.ID, err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetTitle(t.Title).
			SetContent(t.Content).
			Save(ctx)
	} else {
		_, err = r.client.Topic.Create().
			SetTopicID(t.ID).
			SetTitle(t.Title).
			SetContent(t.Content).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save topic %s: %w", t.ID, err)
	}
	return nil
}

func (r *topicRepo) ListTopics(ctx context.Context) ([]Topic, error) {
	rows, err := r.client.Topic.Query().
		Order(ent.Asc(enttopic.FieldTitle)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	out := make([]Topic, 0, len(rows))
	for _, row := range rows {
		out = append(out, Topic{ID: row.TopicID, Title: row.Title, Content: row.Content})
	}
	return out, nil
}
