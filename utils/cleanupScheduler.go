package utils

import (
	"edusphere/config"
	"edusphere/database"
	"edusphere/models"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeCleanupScheduler sets up the nightly orphaned-upload sweep.
// Uploads are written before the enclosing operation commits, so a failed
// registration or update can leave a file behind; the sweep removes any
// upload older than 24h that no record references.
func InitializeCleanupScheduler() *cron.Cron {
	log.Println("[CLEANUP-SCHEDULER] Initializing upload cleanup scheduler...")

	c := cron.New()

	// Run daily at 3 AM
	c.AddFunc("0 3 * * *", func() {
		log.Println("[CLEANUP-SCHEDULER] Running nightly orphaned upload sweep...")
		SweepOrphanedUploads()
	})

	c.Start()
	log.Println("[CLEANUP-SCHEDULER] Cleanup scheduler started - runs daily at 3 AM")
	return c
}

// SweepOrphanedUploads deletes upload files older than 24h that are not
// referenced by any user, course, content record, or page content field.
func SweepOrphanedUploads() {
	referenced, err := referencedUploadPaths()
	if err != nil {
		log.Printf("[CLEANUP-SCHEDULER] Error collecting referenced paths: %v", err)
		return
	}

	uploadDir := config.AppConfig.UploadDir
	cutoff := time.Now().Add(-24 * time.Hour)
	removed := 0

	err = filepath.Walk(uploadDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if info.ModTime().After(cutoff) {
			return nil
		}

		rel, err := filepath.Rel(uploadDir, path)
		if err != nil {
			return nil
		}
		url := "/uploads/" + filepath.ToSlash(rel)
		if referenced[url] {
			return nil
		}

		if err := os.Remove(path); err != nil {
			log.Printf("[CLEANUP-SCHEDULER] Error removing %s: %v", path, err)
			return nil
		}
		removed++
		return nil
	})
	if err != nil {
		log.Printf("[CLEANUP-SCHEDULER] Sweep failed: %v", err)
		return
	}

	log.Printf("[CLEANUP-SCHEDULER] Sweep complete, removed %d orphaned files", removed)
}

func referencedUploadPaths() (map[string]bool, error) {
	db := database.Database.Db
	referenced := make(map[string]bool)

	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		for _, p := range []string{u.IDDocumentPath, u.TransferLetterPath, u.ResumePath} {
			if p != "" {
				referenced[p] = true
			}
		}
	}

	var courses []models.Course
	if err := db.Find(&courses).Error; err != nil {
		return nil, err
	}
	for _, course := range courses {
		if course.ImageURL != "" {
			referenced[course.ImageURL] = true
		}
	}

	var contents []models.Content
	if err := db.Find(&contents).Error; err != nil {
		return nil, err
	}
	for _, content := range contents {
		if content.ImageURL != "" {
			referenced[content.ImageURL] = true
		}
	}

	if database.PageContent != nil {
		doc, err := database.PageContent.GetAll()
		if err != nil {
			return nil, err
		}
		for _, page := range doc {
			for _, value := range page {
				if s, ok := value.(string); ok && strings.HasPrefix(s, "/uploads/") {
					referenced[s] = true
				}
			}
		}
	}

	return referenced, nil
}
