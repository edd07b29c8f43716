package database

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// PageContentStore holds the editable page copy in a single JSON document,
// one object per page. Writes are serialized behind a mutex since every
// update is a read-merge-write of the whole document.
type PageContentStore struct {
	mu   sync.Mutex
	path string
}

// PageContent is the global page content document store
var PageContent *PageContentStore

// InitPageContent opens the document store, seeding default copy when the
// file does not exist yet.
func InitPageContent(path string) error {
	store := &PageContentStore{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := store.write(defaultPageContent()); err != nil {
			return err
		}
	}
	PageContent = store
	return nil
}

// GetAll returns the whole document.
func (s *PageContentStore) GetAll() (map[string]map[string]interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Update merges the supplied fields into an existing page. Unknown pages are
// rejected; nested values (arrays, objects) replace wholesale.
func (s *PageContentStore) Update(page string, fields map[string]interface{}) (map[string]interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	section, ok := doc[page]
	if !ok {
		return nil, fmt.Errorf("invalid page specified: %s", page)
	}

	for key, value := range fields {
		section[key] = value
	}
	doc[page] = section

	if err := s.write(doc); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *PageContentStore) read() (map[string]map[string]interface{}, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var doc map[string]map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *PageContentStore) write(doc map[string]map[string]interface{}) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0644)
}

func defaultPageContent() map[string]map[string]interface{} {
	return map[string]map[string]interface{}{
		"home": {
			"title":       "Transform Your Learning Journey",
			"description": "Join thousands of students and educators in our modern learning platform. Access quality education, connect with expert instructors, and unlock your potential.",
			"image":       "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?auto=format&fit=crop&w=800&h=600",
		},
		"about": {
			"title":       "About EduSphere",
			"description": "Founded in 2020, EduSphere has been at the forefront of digital education, empowering learners worldwide with innovative online courses and cutting-edge learning technologies.",
			"image":       "https://images.unsplash.com/photo-1541339907198-e08756dedf3f?auto=format&fit=crop&w=800&h=600",
		},
		"contact": {
			"title":       "Get In Touch",
			"description": "Have questions about our courses or need assistance? We're here to help you on your learning journey.",
			"image":       "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?auto=format&fit=crop&w=800&h=600",
		},
		"features": {
			"title":       "Why Choose EduSphere?",
			"description": "Discover the features that make our platform the preferred choice for modern learners.",
			"image":       "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?auto=format&fit=crop&w=800&h=600",
		},
		"testimonials": {
			"title":       "What Our Students Say",
			"description": "Hear from thousands of students who have transformed their careers through our platform.",
			"image":       "https://images.unsplash.com/photo-1531482615713-2afd69097998?auto=format&fit=crop&w=800&h=600",
		},
	}
}
