package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"growth-roadmap-backend/internal/config"
	"growth-roadmap-backend/internal/database"
	"growth-roadmap-backend/internal/database/models"
	"growth-roadmap-backend/internal/progression"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type OrganizationData struct {
	Name        string                 `yaml:"name"`
	DisplayName string                 `yaml:"display_name"`
	Description string                 `yaml:"description"`
	Methodology string                 `yaml:"methodology"`
	Metadata    map[string]interface{} `yaml:"metadata,omitempty"`
}

type KeyResultData struct {
	OrganizationName string  `yaml:"organization_name"`
	ObjectiveTitle   string  `yaml:"objective_title"`
	Title            string  `yaml:"title"`
	StartValue       float64 `yaml:"start_value"`
	CurrentValue     float64 `yaml:"current_value"`
	TargetValue      float64 `yaml:"target_value"`
	Unit             string  `yaml:"unit,omitempty"`
}

type ObjectiveData struct {
	Name      string  `yaml:"name"`
	Current   float64 `yaml:"current"`
	Target    float64 `yaml:"target"`
	KeyResult string  `yaml:"key_result,omitempty"`
}

type ChecklistItemData struct {
	Task     string `yaml:"task"`
	Category string `yaml:"category,omitempty"`
}

type PhaseData struct {
	OrganizationName string                 `yaml:"organization_name"`
	PhaseNumber      int                    `yaml:"phase_number"`
	PhaseName        string                 `yaml:"phase_name"`
	PhaseDescription string                 `yaml:"phase_description"`
	DurationWeeks    int                    `yaml:"duration_weeks"`
	Status           string                 `yaml:"status"`
	Objectives       []ObjectiveData        `yaml:"objectives"`
	Checklist        []ChecklistItemData    `yaml:"checklist"`
	Playbook         map[string]interface{} `yaml:"playbook,omitempty"`
}

type TaskData struct {
	OrganizationName   string  `yaml:"organization_name"`
	Title              string  `yaml:"title"`
	Phase              int     `yaml:"phase"`
	Category           string  `yaml:"category,omitempty"`
	KeyResult          string  `yaml:"key_result,omitempty"`
	KeyResultIncrement float64 `yaml:"key_result_increment,omitempty"`
}

// File structures
type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type KeyResultsFile struct {
	KeyResults []KeyResultData `yaml:"key_results"`
}

type PhasesFile struct {
	Phases []PhaseData `yaml:"phases"`
}

type TasksFile struct {
	Tasks []TaskData `yaml:"tasks"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	if err := loadDataFromYAMLFiles(db, dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadYAML collects every *.yaml file under dataDir whose path contains kind
func loadYAML[F any, T any](dataDir, kind string, items func(F) []T) ([]T, error) {
	var all []T

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(filepath.Base(path), kind) {
			var file F
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			all = append(all, items(file)...)
		}
		return nil
	})

	return all, err
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	organizations, err := loadYAML(dataDir, "organizations", func(f OrganizationsFile) []OrganizationData { return f.Organizations })
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	keyResults, err := loadYAML(dataDir, "key_results", func(f KeyResultsFile) []KeyResultData { return f.KeyResults })
	if err != nil {
		return fmt.Errorf("failed to load key results: %w", err)
	}

	phases, err := loadYAML(dataDir, "phases", func(f PhasesFile) []PhaseData { return f.Phases })
	if err != nil {
		return fmt.Errorf("failed to load phases: %w", err)
	}

	tasks, err := loadYAML(dataDir, "tasks", func(f TasksFile) []TaskData { return f.Tasks })
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	if err := checkSingleActive(phases); err != nil {
		return err
	}

	// Create organizations first
	orgMap := make(map[string]*models.Organization)
	orgCreated := 0
	for _, orgData := range organizations {
		org, created, err := createOrganization(db, orgData)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.Name, err)
		}
		orgMap[orgData.Name] = org
		if created {
			orgCreated++
		}
	}
	log.Printf("📋 Organizations: %d created, %d total", orgCreated, len(organizations))

	// Key results are referenced by title from phases and tasks
	krMap := make(map[string]*models.KeyResult)
	krCreated := 0
	for _, krData := range keyResults {
		kr, created, err := createKeyResult(db, krData, orgMap)
		if err != nil {
			return fmt.Errorf("failed to create key result %s: %w", krData.Title, err)
		}
		krMap[krKey(krData.OrganizationName, krData.Title)] = kr
		if created {
			krCreated++
		}
	}
	log.Printf("📋 Key results: %d created, %d total", krCreated, len(keyResults))

	// Tasks go before phases so checklist items can bind to them
	taskCreated := 0
	for _, taskData := range tasks {
		created, err := createTask(db, taskData, orgMap, krMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create task %s: %v", taskData.Title, err)
			continue
		}
		if created {
			taskCreated++
		}
	}
	log.Printf("📋 Tasks: %d created, %d total", taskCreated, len(tasks))

	phaseCreated := 0
	for _, phaseData := range phases {
		created, err := createPhase(db, phaseData, orgMap, krMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create phase %d of %s: %v", phaseData.PhaseNumber, phaseData.OrganizationName, err)
			continue
		}
		if created {
			phaseCreated++
		}
	}
	log.Printf("📋 Phases: %d created, %d total", phaseCreated, len(phases))

	return nil
}

func krKey(orgName, title string) string {
	return orgName + "/" + title
}

// checkSingleActive rejects seed data with more than one active phase per organization
func checkSingleActive(phases []PhaseData) error {
	active := make(map[string]int)
	for _, p := range phases {
		if models.PhaseStatus(p.Status) != models.PhaseStatusActive {
			continue
		}
		if prev, ok := active[p.OrganizationName]; ok {
			return fmt.Errorf("organization %s has phases %d and %d both active", p.OrganizationName, prev, p.PhaseNumber)
		}
		active[p.OrganizationName] = p.PhaseNumber
	}
	return nil
}

func createOrganization(db *gorm.DB, orgData OrganizationData) (*models.Organization, bool, error) {
	var org models.Organization
	if err := db.Where("name = ?", orgData.Name).First(&org).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, false, fmt.Errorf("failed to query organization: %w", err)
		}

		methodology := models.Methodology(orgData.Methodology)
		if methodology == "" {
			methodology = models.MethodologyLeanStartup
		}
		if !methodology.IsValid() {
			return nil, false, fmt.Errorf("invalid methodology %q", orgData.Methodology)
		}

		var metadataJSON json.RawMessage
		if orgData.Metadata != nil {
			metadataJSON, _ = json.Marshal(orgData.Metadata)
		}

		org = models.Organization{
			Name:        orgData.Name,
			DisplayName: orgData.DisplayName,
			Description: orgData.Description,
			Methodology: methodology,
			Metadata:    metadataJSON,
		}

		if err := db.Create(&org).Error; err != nil {
			return nil, false, fmt.Errorf("failed to create organization: %w", err)
		}
		return &org, true, nil
	}

	return &org, false, nil
}

func createKeyResult(db *gorm.DB, krData KeyResultData, orgMap map[string]*models.Organization) (*models.KeyResult, bool, error) {
	org, ok := orgMap[krData.OrganizationName]
	if !ok {
		return nil, false, fmt.Errorf("organization %s not found", krData.OrganizationName)
	}

	var kr models.KeyResult
	err := db.Where("organization_id = ? AND title = ?", org.ID, krData.Title).First(&kr).Error
	if err == nil {
		return &kr, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, fmt.Errorf("failed to query key result: %w", err)
	}

	kr = models.KeyResult{
		OrganizationID: org.ID,
		ObjectiveTitle: krData.ObjectiveTitle,
		Title:          krData.Title,
		StartValue:     krData.StartValue,
		CurrentValue:   krData.CurrentValue,
		TargetValue:    krData.TargetValue,
		Unit:           krData.Unit,
	}
	if err := db.Create(&kr).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create key result: %w", err)
	}
	return &kr, true, nil
}

func createPhase(db *gorm.DB, phaseData PhaseData, orgMap map[string]*models.Organization, krMap map[string]*models.KeyResult) (bool, error) {
	org, ok := orgMap[phaseData.OrganizationName]
	if !ok {
		return false, fmt.Errorf("organization %s not found", phaseData.OrganizationName)
	}

	var count int64
	if err := db.Model(&models.Phase{}).
		Where("organization_id = ? AND phase_number = ?", org.ID, phaseData.PhaseNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	status := models.PhaseStatus(phaseData.Status)
	if status == "" {
		status = models.PhaseStatusPending
	}
	if !status.IsValid() {
		return false, fmt.Errorf("invalid status %q", phaseData.Status)
	}

	objectives := make([]models.Objective, 0, len(phaseData.Objectives))
	for _, o := range phaseData.Objectives {
		objective := models.Objective{Name: o.Name, Current: o.Current, Target: o.Target}
		if o.KeyResult != "" {
			kr, ok := krMap[krKey(phaseData.OrganizationName, o.KeyResult)]
			if !ok {
				return false, fmt.Errorf("key result %s not found", o.KeyResult)
			}
			id := kr.ID
			objective.KeyResultID = &id
		}
		objectives = append(objectives, objective)
	}

	checklist := make([]models.ChecklistItem, 0, len(phaseData.Checklist))
	for _, item := range phaseData.Checklist {
		checklist = append(checklist, models.ChecklistItem{Task: item.Task, Category: item.Category})
	}

	var existing []models.Task
	if err := db.Where("organization_id = ? AND phase = ?", org.ID, phaseData.PhaseNumber).
		Order("created_at").Find(&existing).Error; err != nil {
		return false, fmt.Errorf("failed to load tasks: %w", err)
	}
	checklist, missing := progression.BindChecklist(org.ID, phaseData.PhaseNumber, checklist, existing)

	var playbook []byte
	if phaseData.Playbook != nil {
		playbook, _ = json.Marshal(phaseData.Playbook)
	}

	phase := models.Phase{
		OrganizationID:   org.ID,
		PhaseNumber:      phaseData.PhaseNumber,
		PhaseName:        phaseData.PhaseName,
		PhaseDescription: phaseData.PhaseDescription,
		Methodology:      org.Methodology,
		DurationWeeks:    phaseData.DurationWeeks,
		Status:           status,
	}
	progression.ApplyContent(&phase, progression.Content{
		Objectives: objectives,
		Checklist:  checklist,
		Playbook:   playbook,
	})
	if status == models.PhaseStatusActive {
		now := time.Now()
		phase.ActivatedAt = &now
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if len(missing) > 0 {
			if err := tx.Create(&missing).Error; err != nil {
				return fmt.Errorf("failed to create checklist tasks: %w", err)
			}
		}
		if err := tx.Create(&phase).Error; err != nil {
			return fmt.Errorf("failed to create phase: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func createTask(db *gorm.DB, taskData TaskData, orgMap map[string]*models.Organization, krMap map[string]*models.KeyResult) (bool, error) {
	org, ok := orgMap[taskData.OrganizationName]
	if !ok {
		return false, fmt.Errorf("organization %s not found", taskData.OrganizationName)
	}

	var count int64
	if err := db.Model(&models.Task{}).
		Where("organization_id = ? AND phase = ? AND title = ?", org.ID, taskData.Phase, taskData.Title).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	task := models.Task{
		OrganizationID:     org.ID,
		Title:              taskData.Title,
		Phase:              taskData.Phase,
		Category:           taskData.Category,
		KeyResultIncrement: taskData.KeyResultIncrement,
	}
	if task.KeyResultIncrement == 0 {
		task.KeyResultIncrement = 1
	}
	if taskData.KeyResult != "" {
		kr, ok := krMap[krKey(taskData.OrganizationName, taskData.KeyResult)]
		if !ok {
			return false, fmt.Errorf("key result %s not found", taskData.KeyResult)
		}
		id := kr.ID
		task.KeyResultID = &id
	}

	if err := db.Create(&task).Error; err != nil {
		return false, fmt.Errorf("failed to create task: %w", err)
	}
	return true, nil
}
