package progression

import (
	"strings"

	"growth-roadmap-backend/internal/database/models"

	"github.com/google/uuid"
)

// BindChecklist returns a copy of checklist with every item linked to a
// ledger task of phaseNumber. Items already linked to one of those tasks keep
// it; the others are matched by title, ignoring case and surrounding space.
// Items without a match get a new task, returned in missing for the caller to
// store. Items sharing a title share the new task.
func BindChecklist(orgID uuid.UUID, phaseNumber int, checklist []models.ChecklistItem, tasks []models.Task) ([]models.ChecklistItem, []models.Task) {
	known := make(map[uuid.UUID]bool, len(tasks))
	byTitle := make(map[string]uuid.UUID, len(tasks))
	for _, t := range tasks {
		if t.OrganizationID != orgID || t.Phase != phaseNumber {
			continue
		}
		known[t.ID] = true
		if _, ok := byTitle[titleKey(t.Title)]; !ok {
			byTitle[titleKey(t.Title)] = t.ID
		}
	}

	out := make([]models.ChecklistItem, len(checklist))
	var missing []models.Task
	for i, item := range checklist {
		if item.TaskID == nil || !known[*item.TaskID] {
			id, ok := byTitle[titleKey(item.Task)]
			if !ok {
				task := models.Task{
					BaseModel:          models.BaseModel{ID: uuid.New()},
					OrganizationID:     orgID,
					Title:              strings.TrimSpace(item.Task),
					Phase:              phaseNumber,
					Category:           item.Category,
					KeyResultIncrement: 1,
				}
				missing = append(missing, task)
				id = task.ID
				byTitle[titleKey(item.Task)] = id
			}
			item.TaskID = &id
		}
		out[i] = item
	}
	return out, missing
}

func titleKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
