package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"growth-roadmap-backend/internal/database/models"
	apperrors "growth-roadmap-backend/internal/errors"
	"growth-roadmap-backend/internal/generator"
	"growth-roadmap-backend/internal/logger"
	"growth-roadmap-backend/internal/metrics"
	"growth-roadmap-backend/internal/progression"
	"growth-roadmap-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// statsConcurrency bounds the per-phase count queries issued at once
const statsConcurrency = 4

// PhaseServiceOptions tunes the roadmap rules
type PhaseServiceOptions struct {
	MaxRegenerations int
	PreviewLimit     int
	// Now defaults to time.Now
	Now func() time.Time
}

// PhaseService owns the roadmap lifecycle: generation, progress recompute,
// activation, regeneration and skipping.
type PhaseService struct {
	phaseRepo      repository.PhaseRepositoryInterface
	taskRepo       repository.TaskRepositoryInterface
	completionRepo repository.TaskCompletionRepositoryInterface
	krRepo         repository.KeyResultRepositoryInterface
	orgRepo        repository.OrganizationRepositoryInterface
	generator      generator.ContentGenerator
	stateMachine   *progression.StateMachine
	opts           PhaseServiceOptions
	now            func() time.Time
}

// GenerateRoadmapRequest represents the request to generate a roadmap
type GenerateRoadmapRequest struct {
	RegenerateOnly bool `json:"regenerate_only"`
}

// RecomputeResult is the outcome of recomputing one phase
type RecomputeResult struct {
	Phase    progression.PhaseView `json:"phase"`
	Warnings []progression.Warning `json:"warnings"`
}

// NewPhaseService creates a new phase service. gen may be nil, in which case
// generation and regeneration fail with a configuration error.
func NewPhaseService(
	phaseRepo repository.PhaseRepositoryInterface,
	taskRepo repository.TaskRepositoryInterface,
	completionRepo repository.TaskCompletionRepositoryInterface,
	krRepo repository.KeyResultRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	gen generator.ContentGenerator,
	opts PhaseServiceOptions,
) *PhaseService {
	if opts.MaxRegenerations <= 0 {
		opts.MaxRegenerations = progression.DefaultMaxRegenerations
	}
	if opts.PreviewLimit <= 0 {
		opts.PreviewLimit = progression.DefaultPreviewLimit
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &PhaseService{
		phaseRepo:      phaseRepo,
		taskRepo:       taskRepo,
		completionRepo: completionRepo,
		krRepo:         krRepo,
		orgRepo:        orgRepo,
		generator:      gen,
		stateMachine:   progression.NewStateMachine(),
		opts:           opts,
		now:            opts.Now,
	}
}

// GetRoadmap returns the organization's roadmap read model
func (s *PhaseService) GetRoadmap(ctx context.Context, orgID uuid.UUID) (*progression.RoadmapView, error) {
	if _, err := loadOrganization(ctx, s.orgRepo, orgID); err != nil {
		return nil, err
	}
	return s.roadmapView(ctx, orgID)
}

func (s *PhaseService) roadmapView(ctx context.Context, orgID uuid.UUID) (*progression.RoadmapView, error) {
	phases, err := s.phaseRepo.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list phases: %w", err)
	}

	krCount, err := s.krRepo.CountByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count key results: %w", err)
	}

	view := progression.BuildRoadmapView(orgID, phases, krCount > 0, s.opts.MaxRegenerations)
	return &view, nil
}

// GenerateRoadmap creates the roadmap of an organization that has none yet.
// The lowest-numbered phase starts active, every other phase pending.
func (s *PhaseService) GenerateRoadmap(ctx context.Context, orgID uuid.UUID, req *GenerateRoadmapRequest) (*progression.RoadmapView, error) {
	if s.generator == nil {
		return nil, apperrors.ErrGeneratorNotConfigured
	}
	if req == nil {
		req = &GenerateRoadmapRequest{}
	}

	org, err := loadOrganization(ctx, s.orgRepo, orgID)
	if err != nil {
		return nil, err
	}

	count, err := s.phaseRepo.CountByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count phases: %w", err)
	}
	if count > 0 {
		return nil, apperrors.ErrRoadmapExists
	}

	generated, err := s.generator.GeneratePhases(ctx, generator.RoadmapRequest{
		OrganizationID:   org.ID,
		OrganizationName: org.DisplayName,
		Methodology:      org.Methodology,
		RegenerateOnly:   req.RegenerateOnly,
	})
	if err != nil {
		return nil, err
	}

	existing, err := s.taskRepo.ListByOrganization(ctx, orgID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	phases, tasks := s.buildPhases(org, generated, existing)
	err = s.phaseRepo.Transaction(ctx, func(tx repository.PhaseRepositoryInterface) error {
		if err := tx.CreateBatch(ctx, phases); err != nil {
			return err
		}
		return storeTasks(ctx, tx, tasks)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrRoadmapExists
		}
		return nil, fmt.Errorf("failed to store roadmap: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"organization_id": orgID,
		"phases":          len(phases),
		"tasks":           len(tasks),
	}).Info("Roadmap generated")

	if _, err := s.RecomputeOrganization(ctx, orgID); err != nil {
		logger.WithContext(ctx).Warnf("Recompute after roadmap generation failed: %v", err)
	}

	return s.roadmapView(ctx, orgID)
}

// buildPhases turns generator output into phase rows with every checklist
// item bound to a ledger task. It also returns the tasks that must be created.
func (s *PhaseService) buildPhases(org *models.Organization, generated []generator.GeneratedPhase, existing []models.Task) ([]models.Phase, []models.Task) {
	sorted := append([]generator.GeneratedPhase(nil), generated...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].PhaseNumber < sorted[j].PhaseNumber })

	now := s.now()
	phases := make([]models.Phase, 0, len(sorted))
	var tasks []models.Task
	for i, g := range sorted {
		phase := models.Phase{
			OrganizationID:   org.ID,
			PhaseNumber:      g.PhaseNumber,
			PhaseName:        g.PhaseName,
			PhaseDescription: g.PhaseDescription,
			Methodology:      org.Methodology,
			DurationWeeks:    g.DurationWeeks,
			Status:           models.PhaseStatusPending,
		}
		progression.ApplyContent(&phase, g.Content())
		checklist, missing := progression.BindChecklist(org.ID, phase.PhaseNumber, phase.Checklist, existing)
		phase.Checklist = checklist
		tasks = append(tasks, missing...)
		if i == 0 {
			phase.Status = models.PhaseStatusActive
			phase.ActivatedAt = &now
		}
		phases = append(phases, phase)
	}
	return phases, tasks
}

// storeTasks creates the ledger tasks backing new checklist items in the
// transaction of tx
func storeTasks(ctx context.Context, tx repository.PhaseRepositoryInterface, tasks []models.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return tx.Tasks().CreateBatch(ctx, tasks)
}

// RecomputeOrganization rebuilds the derived fields of every phase of the
// organization from the task ledger and key results.
func (s *PhaseService) RecomputeOrganization(ctx context.Context, orgID uuid.UUID) ([]RecomputeResult, error) {
	if _, err := loadOrganization(ctx, s.orgRepo, orgID); err != nil {
		return nil, err
	}

	phases, err := s.phaseRepo.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list phases: %w", err)
	}
	if len(phases) == 0 {
		return []RecomputeResult{}, nil
	}

	return s.recompute(ctx, orgID, phases)
}

// RecomputePhase rebuilds the derived fields of a single phase
func (s *PhaseService) RecomputePhase(ctx context.Context, orgID uuid.UUID, phaseNumber int) (*RecomputeResult, error) {
	phase, err := s.phaseRepo.GetByNumber(ctx, orgID, phaseNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPhaseNotFound
		}
		return nil, fmt.Errorf("failed to get phase: %w", err)
	}

	results, err := s.recompute(ctx, orgID, []models.Phase{*phase})
	if err != nil {
		return nil, err
	}
	return &results[0], nil
}

// recompute loads the inputs outside the transaction, then applies them to
// freshly locked rows so a concurrent activation is never overwritten.
// Concurrent recomputes are last-write-wins on the derived columns; the next
// recompute converges on the ledger.
func (s *PhaseService) recompute(ctx context.Context, orgID uuid.UUID, phases []models.Phase) ([]RecomputeResult, error) {
	inputs, err := s.loadInputs(ctx, orgID, phases)
	if err != nil {
		return nil, err
	}

	wanted := make(map[int]bool, len(phases))
	for i := range phases {
		wanted[phases[i].PhaseNumber] = true
	}

	var results []RecomputeResult
	err = s.phaseRepo.Transaction(ctx, func(tx repository.PhaseRepositoryInterface) error {
		results = results[:0]
		locked, err := tx.ListForUpdate(ctx, orgID)
		if err != nil {
			return err
		}
		for i := range locked {
			phase := &locked[i]
			if !wanted[phase.PhaseNumber] {
				continue
			}
			in := inputs.forPhase(phase.PhaseNumber)
			warnings := progression.Recompute(phase, in)
			if err := tx.UpdateDerived(ctx, phase); err != nil {
				return err
			}
			results = append(results, RecomputeResult{
				Phase:    progression.BuildPhaseView(phase, s.opts.MaxRegenerations),
				Warnings: nonNilWarnings(warnings),
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to recompute phases: %w", err)
	}
	if len(results) == 0 {
		return nil, apperrors.ErrPhaseNotFound
	}

	s.reportRecompute(ctx, results)
	return results, nil
}

func (s *PhaseService) reportRecompute(ctx context.Context, results []RecomputeResult) {
	metrics.Recomputes.Add(float64(len(results)))
	log := logger.WithContext(ctx)
	for _, r := range results {
		for _, w := range r.Warnings {
			metrics.ProgressWarnings.WithLabelValues(string(w.Code)).Inc()
			log.WithField("phase_number", w.PhaseNumber).Warn(w.Message)
		}
	}
}

func nonNilWarnings(w []progression.Warning) []progression.Warning {
	if w == nil {
		return []progression.Warning{}
	}
	return w
}

// recomputeInputs holds what the recompute of all phases reads from the ledger
type recomputeInputs struct {
	stats     map[int]progression.TaskStats
	validated map[uuid.UUID]bool
	krs       map[uuid.UUID]progression.KeyResultProgress
}

func (in recomputeInputs) forPhase(phaseNumber int) progression.Inputs {
	return progression.Inputs{
		Stats:             in.stats[phaseNumber],
		ValidatedTaskIDs:  in.validated,
		KeyResultProgress: in.krs,
	}
}

func (s *PhaseService) loadInputs(ctx context.Context, orgID uuid.UUID, phases []models.Phase) (recomputeInputs, error) {
	in := recomputeInputs{
		stats:     make(map[int]progression.TaskStats, len(phases)),
		validated: make(map[uuid.UUID]bool),
		krs:       make(map[uuid.UUID]progression.KeyResultProgress),
	}

	allStats := make([]progression.TaskStats, len(phases))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(statsConcurrency)
	for i := range phases {
		g.Go(func() error {
			stats, err := s.loadTaskStats(gctx, orgID, phases[i].PhaseNumber)
			if err != nil {
				return err
			}
			allStats[i] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return in, err
	}
	for _, st := range allStats {
		in.stats[st.PhaseNumber] = st
	}

	ids, err := s.completionRepo.ValidatedTaskIDs(ctx, orgID)
	if err != nil {
		return in, fmt.Errorf("failed to load validated tasks: %w", err)
	}
	for _, id := range ids {
		in.validated[id] = true
	}

	var krIDs []uuid.UUID
	for i := range phases {
		krIDs = append(krIDs, progression.KeyResultIDs(phases[i].Objectives)...)
	}
	if len(krIDs) > 0 {
		krs, err := s.krRepo.ListByIDs(ctx, krIDs)
		if err != nil {
			return in, fmt.Errorf("failed to load key results: %w", err)
		}
		for _, kr := range krs {
			if kr.OrganizationID != orgID {
				continue
			}
			in.krs[kr.ID] = progression.KeyResultProgress{Current: kr.CurrentValue, Target: kr.TargetValue}
		}
	}
	return in, nil
}

// loadTaskStats issues the two count queries of a phase concurrently
func (s *PhaseService) loadTaskStats(ctx context.Context, orgID uuid.UUID, phaseNumber int) (progression.TaskStats, error) {
	stats := progression.TaskStats{PhaseNumber: phaseNumber}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, err := s.taskRepo.CountByPhase(gctx, orgID, phaseNumber)
		if err != nil {
			return fmt.Errorf("failed to count tasks of phase %d: %w", phaseNumber, err)
		}
		stats.Total = total
		return nil
	})
	g.Go(func() error {
		done, err := s.completionRepo.CountValidatedByPhase(gctx, orgID, phaseNumber)
		if err != nil {
			return fmt.Errorf("failed to count completions of phase %d: %w", phaseNumber, err)
		}
		stats.CompletedValidated = done
		return nil
	})
	if err := g.Wait(); err != nil {
		return progression.TaskStats{}, err
	}
	return stats, nil
}

// ActivationPreview describes what activating phaseNumber would leave behind
func (s *PhaseService) ActivationPreview(ctx context.Context, orgID uuid.UUID, phaseNumber int) (*progression.ActivationPreview, error) {
	if _, err := loadOrganization(ctx, s.orgRepo, orgID); err != nil {
		return nil, err
	}

	phases, err := s.phaseRepo.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list phases: %w", err)
	}

	target := progression.FindPhase(phases, phaseNumber)
	if target == nil {
		return nil, apperrors.ErrPhaseNotFound
	}
	if target.Status != models.PhaseStatusPending {
		return nil, fmt.Errorf("phase %d is %s: %w", phaseNumber, target.Status, apperrors.ErrPhaseNotPending)
	}

	preview := progression.BuildActivationPreview(progression.ActivePhase(phases), target, s.opts.PreviewLimit)
	return &preview, nil
}

// Activate makes phaseNumber the active phase. The previously active phase is
// completed in the same transaction, whatever its progress.
func (s *PhaseService) Activate(ctx context.Context, orgID uuid.UUID, phaseNumber int) (*progression.RoadmapView, error) {
	if _, err := loadOrganization(ctx, s.orgRepo, orgID); err != nil {
		return nil, err
	}

	var superseded []int
	err := s.phaseRepo.Transaction(ctx, func(tx repository.PhaseRepositoryInterface) error {
		phases, err := tx.ListForUpdate(ctx, orgID)
		if err != nil {
			return err
		}
		plan, err := s.stateMachine.PlanActivation(phases, phaseNumber)
		if err != nil {
			return err
		}
		plan.Apply(s.now())

		// Demote first so the single-active index never sees two rows.
		superseded = superseded[:0]
		for _, prev := range plan.Superseded {
			if err := tx.UpdateStatus(ctx, prev); err != nil {
				return err
			}
			superseded = append(superseded, prev.PhaseNumber)
		}
		return tx.UpdateStatus(ctx, plan.Target)
	})
	metrics.PhaseActivations.WithLabelValues(metrics.Outcome(err, isRejection)).Inc()
	if err != nil {
		if isRejection(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to activate phase: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"organization_id": orgID,
		"phase_number":    phaseNumber,
		"superseded":      superseded,
	}).Info("Phase activated")

	return s.roadmapView(ctx, orgID)
}

// Regenerate replaces the content of phaseNumber with fresh generator output.
// The cap is checked before the generator is called; a generator failure
// leaves the phase and its counter untouched.
func (s *PhaseService) Regenerate(ctx context.Context, orgID uuid.UUID, phaseNumber int) (*progression.PhaseView, error) {
	view, err := s.regenerate(ctx, orgID, phaseNumber)
	metrics.PhaseRegenerations.WithLabelValues(metrics.Outcome(err, isRejection)).Inc()
	return view, err
}

func (s *PhaseService) regenerate(ctx context.Context, orgID uuid.UUID, phaseNumber int) (*progression.PhaseView, error) {
	if s.generator == nil {
		return nil, apperrors.ErrGeneratorNotConfigured
	}

	org, err := loadOrganization(ctx, s.orgRepo, orgID)
	if err != nil {
		return nil, err
	}

	phase, err := s.phaseRepo.GetByNumber(ctx, orgID, phaseNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPhaseNotFound
		}
		return nil, fmt.Errorf("failed to get phase: %w", err)
	}
	if err := progression.CheckRegeneration(phase, s.opts.MaxRegenerations); err != nil {
		return nil, err
	}

	content, err := s.generator.RegeneratePhase(ctx, generator.PhaseRequest{
		OrganizationID: orgID,
		Methodology:    org.Methodology,
		PhaseNumber:    phase.PhaseNumber,
		PhaseName:      phase.PhaseName,
		Attempt:        phase.RegenerationCount + 1,
	})
	if err != nil {
		return nil, err
	}

	existing, err := s.taskRepo.ListByOrganization(ctx, orgID, &phaseNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	var regenerated models.Phase
	err = s.phaseRepo.Transaction(ctx, func(tx repository.PhaseRepositoryInterface) error {
		phases, err := tx.ListForUpdate(ctx, orgID)
		if err != nil {
			return err
		}
		locked := progression.FindPhase(phases, phaseNumber)
		if locked == nil {
			return apperrors.ErrPhaseNotFound
		}
		// A concurrent regeneration may have used the last slot meanwhile.
		if err := progression.CheckRegeneration(locked, s.opts.MaxRegenerations); err != nil {
			return err
		}
		progression.ApplyRegeneration(locked, content)
		checklist, missing := progression.BindChecklist(orgID, phaseNumber, locked.Checklist, existing)
		locked.Checklist = checklist
		if err := tx.UpdateContent(ctx, locked); err != nil {
			return err
		}
		if err := storeTasks(ctx, tx, missing); err != nil {
			return err
		}
		regenerated = *locked
		return nil
	})
	if err != nil {
		if isRejection(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to store regenerated phase: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"organization_id": orgID,
		"phase_number":    phaseNumber,
	}).Info("Phase regenerated")

	// The regeneration is committed; a failed recompute only leaves the
	// derived fields stale until the next one.
	result, err := s.RecomputePhase(ctx, orgID, phaseNumber)
	if err != nil {
		logger.WithContext(ctx).WithField("phase_number", phaseNumber).
			Warnf("Recompute after regeneration failed: %v", err)
		view := progression.BuildPhaseView(&regenerated, s.opts.MaxRegenerations)
		return &view, nil
	}
	return &result.Phase, nil
}

// Skip marks a pending or active phase as skipped. Skipping the active phase
// leaves the roadmap without an active phase until the next activation.
func (s *PhaseService) Skip(ctx context.Context, orgID uuid.UUID, phaseNumber int) (*progression.RoadmapView, error) {
	if _, err := loadOrganization(ctx, s.orgRepo, orgID); err != nil {
		return nil, err
	}

	err := s.phaseRepo.Transaction(ctx, func(tx repository.PhaseRepositoryInterface) error {
		phases, err := tx.ListForUpdate(ctx, orgID)
		if err != nil {
			return err
		}
		target, err := s.stateMachine.PlanSkip(phases, phaseNumber)
		if err != nil {
			return err
		}
		progression.ApplySkip(target, s.now())
		return tx.UpdateStatus(ctx, target)
	})
	metrics.PhaseSkips.WithLabelValues(metrics.Outcome(err, isRejection)).Inc()
	if err != nil {
		if isRejection(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to skip phase: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"organization_id": orgID,
		"phase_number":    phaseNumber,
	}).Info("Phase skipped")

	return s.roadmapView(ctx, orgID)
}

// isRejection reports errors that reflect the request rather than the system
func isRejection(err error) bool {
	return apperrors.IsPrecondition(err) || apperrors.IsNotFound(err)
}
