// Package resources provides supplementary learning material lookup.
// The engine consumes the Finder interface; the concrete backends live
// outside the tutoring core.
package resources

import (
	"context"
	"fmt"
	"net/url"
)

// ResourceSet is supplementary material for one learning goal.
type ResourceSet struct {
	Explanation string
	Videos      []string
	Images      []string
	Articles    []string
}

// Finder locates supplementary material for a struggling learner.
type Finder interface {
	FindResources(ctx context.Context, goalTitle, topicTitle, level string) (*ResourceSet, error)
}

// StaticFinder builds search links instead of calling an external
// service. It never fails, which keeps the tutoring turn alive when no
// richer backend is configured.
type StaticFinder struct{}

// NewStaticFinder creates a StaticFinder.
func NewStaticFinder() *StaticFinder {
	return &StaticFinder{}
}

func (f *StaticFinder) FindResources(_ context.Context, goalTitle, topicTitle, level string) (*ResourceSet, error) {
	query := url.QueryEscape(goalTitle + " " + topicTitle)
	return &ResourceSet{
		Explanation: fmt.Sprintf("Take another look at %q within %s. Start from the basics and build up.", goalTitle, topicTitle),
		Videos: []string{
			"https://www.youtube.com/results?search_query=" + query,
		},
		Images: []string{
			"https://www.google.com/search?tbm=isch&q=" + query,
		},
		Articles: []string{
			"https://en.wikipedia.org/w/index.php?search=" + query,
			"https://www.khanacademy.org/search?page_search_query=" + query,
		},
	}, nil
}
