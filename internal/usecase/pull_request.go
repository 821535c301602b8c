package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github-scout/internal/domain"
	"github-scout/internal/gateway"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// PRUseCase manages tracked pull requests and keeps them in sync with GitHub.
type PRUseCase struct {
	prRepo            domain.PRRepository
	fellowRepo        domain.FellowRepository
	source            domain.SourceControl
	logger            *logrus.Logger
	importConcurrency int
	now               func() time.Time
}

func NewPRUseCase(
	prRepo domain.PRRepository,
	fellowRepo domain.FellowRepository,
	source domain.SourceControl,
	logger *logrus.Logger,
	importConcurrency int,
) domain.PRUseCase {
	if importConcurrency < 1 {
		importConcurrency = 1
	}
	return &PRUseCase{
		prRepo:            prRepo,
		fellowRepo:        fellowRepo,
		source:            source,
		logger:            logger,
		importConcurrency: importConcurrency,
		now:               time.Now,
	}
}

// CreatePR stores a PR built by the caller, commits included.
func (uc *PRUseCase) CreatePR(ctx context.Context, pr *domain.PullRequest) (*domain.PullRequest, error) {
	if strings.TrimSpace(pr.FellowID) == "" {
		return nil, domain.ErrInvalidFellowID
	}
	if err := validatePR(pr); err != nil {
		return nil, err
	}

	fellow, err := uc.fellowRepo.GetByID(ctx, pr.FellowID)
	if err != nil {
		return nil, err
	}
	if pr.Username == "" {
		pr.Username = fellow.Username
	}

	uc.fillTimestamps(pr)
	return uc.prRepo.CreateWithCommits(ctx, pr)
}

func (uc *PRUseCase) GetPR(ctx context.Context, id int64) (*domain.PullRequest, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidPRID
	}
	return uc.prRepo.GetByID(ctx, id)
}

func (uc *PRUseCase) ListFellowPRs(ctx context.Context, fellowID string) ([]*domain.PullRequest, error) {
	if strings.TrimSpace(fellowID) == "" {
		return nil, domain.ErrInvalidFellowID
	}
	if _, err := uc.fellowRepo.GetByID(ctx, fellowID); err != nil {
		return nil, err
	}
	return uc.prRepo.ListByFellow(ctx, fellowID)
}

// UpdatePR rewrites the PR row and replaces its commit set. Optional
// fields left empty in pr keep their stored values; nil Commits keeps
// the stored commits.
func (uc *PRUseCase) UpdatePR(ctx context.Context, pr *domain.PullRequest) (*domain.PullRequest, error) {
	if pr.ID <= 0 {
		return nil, domain.ErrInvalidPRID
	}
	if err := validatePR(pr); err != nil {
		return nil, err
	}

	stored, err := uc.prRepo.GetByID(ctx, pr.ID)
	if err != nil {
		return nil, err
	}

	return uc.prRepo.ReplaceWithCommits(ctx, mergeStored(pr, stored))
}

func (uc *PRUseCase) AddCommits(ctx context.Context, prID int64, commits []*domain.Commit) ([]*domain.Commit, error) {
	if prID <= 0 {
		return nil, domain.ErrInvalidPRID
	}
	if len(commits) == 0 {
		return nil, domain.ErrInvalidCommit
	}
	if err := validateCommits(commits); err != nil {
		return nil, err
	}
	return uc.prRepo.AddCommits(ctx, prID, commits)
}

func (uc *PRUseCase) DeletePR(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidPRID
	}
	return uc.prRepo.Delete(ctx, id)
}

// FetchRemotePR reads a PR from GitHub without storing it.
func (uc *PRUseCase) FetchRemotePR(ctx context.Context, coords domain.PRCoordinates) (*domain.RemotePullRequest, error) {
	owner, repo, number, err := resolveCoordinates(coords)
	if err != nil {
		return nil, err
	}
	return uc.fetch(ctx, owner, repo, number)
}

// TrackPR fetches a PR from GitHub and stores it under the fellow.
func (uc *PRUseCase) TrackPR(ctx context.Context, fellowID string, coords domain.PRCoordinates) (*domain.PullRequest, error) {
	if strings.TrimSpace(fellowID) == "" {
		return nil, domain.ErrInvalidFellowID
	}
	owner, repo, number, err := resolveCoordinates(coords)
	if err != nil {
		return nil, err
	}

	fellow, err := uc.fellowRepo.GetByID(ctx, fellowID)
	if err != nil {
		return nil, err
	}

	exists, err := uc.prRepo.ExistsByNumber(ctx, owner+"/"+repo, number)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrPRAlreadyTracked
	}

	remote, err := uc.fetch(ctx, owner, repo, number)
	if err != nil {
		return nil, err
	}

	return uc.prRepo.CreateWithCommits(ctx, uc.fromRemote(remote, fellow))
}

// RefreshPR re-reads a tracked PR from GitHub and replaces the stored row
// and commits in one step.
func (uc *PRUseCase) RefreshPR(ctx context.Context, id int64) (*domain.PullRequest, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidPRID
	}

	stored, err := uc.prRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	owner, repo, ok := domain.SplitRepository(stored.Repository)
	if !ok {
		return nil, domain.ErrInvalidRepository
	}

	remote, err := uc.fetch(ctx, owner, repo, stored.Number)
	if err != nil {
		return nil, err
	}

	refreshed := uc.fromRemote(remote, &domain.Fellow{ID: stored.FellowID, Username: stored.Username})
	refreshed.ID = stored.ID

	return uc.prRepo.ReplaceWithCommits(ctx, refreshed)
}

// ImportFellowPRs tracks every PR the fellow opened in repository that is
// not tracked yet. Imports are not rolled back when one fails: the error
// comes back together with the result of the imports that did succeed.
func (uc *PRUseCase) ImportFellowPRs(ctx context.Context, fellowID, repository string) (*domain.ImportResult, error) {
	if strings.TrimSpace(fellowID) == "" {
		return nil, domain.ErrInvalidFellowID
	}
	owner, repo, err := gateway.ParseRepositoryURL(repository)
	if err != nil {
		return nil, err
	}

	fellow, err := uc.fellowRepo.GetByID(ctx, fellowID)
	if err != nil {
		return nil, err
	}

	found, err := uc.source.SearchPullRequestsByAuthor(ctx, owner, repo, fellow.Username)
	if err != nil {
		uc.logger.WithError(err).WithFields(logrus.Fields{
			"repository": owner + "/" + repo,
			"username":   fellow.Username,
		}).Error("GitHub search failed")
		return nil, domain.ErrUpstreamFetch
	}

	result := &domain.ImportResult{
		Repository: owner + "/" + repo,
		Found:      len(found),
		Imported:   []*domain.PullRequest{},
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.importConcurrency)

	for _, candidate := range found {
		candidate := candidate
		g.Go(func() error {
			imported, err := uc.importOne(gctx, fellow, candidate)
			mu.Lock()
			defer mu.Unlock()

			switch {
			case errors.Is(err, domain.ErrPRAlreadyTracked):
				result.Skipped++
				return nil
			case err != nil:
				return err
			}
			result.Imported = append(result.Imported, imported)
			return nil
		})
	}

	err = g.Wait()

	sort.Slice(result.Imported, func(i, j int) bool {
		return result.Imported[i].Number < result.Imported[j].Number
	})

	entry := uc.logger.WithFields(logrus.Fields{
		"fellow_id":  fellowID,
		"repository": result.Repository,
		"found":      result.Found,
		"imported":   len(result.Imported),
		"skipped":    result.Skipped,
	})
	if err != nil {
		entry.WithError(err).Warn("Import stopped early")
		return result, err
	}
	entry.Info("Imported pull requests")

	return result, nil
}

func (uc *PRUseCase) importOne(ctx context.Context, fellow *domain.Fellow, candidate *domain.RemotePullRequest) (*domain.PullRequest, error) {
	exists, err := uc.prRepo.ExistsByNumber(ctx, candidate.Repository(), candidate.Number)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrPRAlreadyTracked
	}

	remote, err := uc.fetch(ctx, candidate.Owner, candidate.Repo, candidate.Number)
	if err != nil {
		return nil, err
	}

	return uc.prRepo.CreateWithCommits(ctx, uc.fromRemote(remote, fellow))
}

// fetch hides the GitHub failure behind ErrUpstreamFetch; the cause is
// only logged.
func (uc *PRUseCase) fetch(ctx context.Context, owner, repo string, number int) (*domain.RemotePullRequest, error) {
	remote, err := uc.source.GetPullRequest(ctx, owner, repo, number)
	if err != nil {
		uc.logger.WithError(err).WithFields(logrus.Fields{
			"owner":  owner,
			"repo":   repo,
			"number": number,
		}).Error("GitHub fetch failed")
		return nil, domain.ErrUpstreamFetch
	}
	return remote, nil
}

func (uc *PRUseCase) fromRemote(remote *domain.RemotePullRequest, fellow *domain.Fellow) *domain.PullRequest {
	username := remote.Author.Login
	if username == "" {
		username = fellow.Username
	}

	state := remote.State
	if !domain.ValidState(state) {
		state = domain.StateClosed
	}

	return &domain.PullRequest{
		Number:      remote.Number,
		Repository:  remote.Repository(),
		Username:    username,
		FellowID:    fellow.ID,
		Title:       remote.Title,
		HTMLURL:     remote.HTMLURL,
		State:       state,
		CreatedAt:   remote.CreatedAt,
		UpdatedAt:   remote.UpdatedAt,
		MergedAt:    remote.MergedAt,
		LastChecked: uc.now(),
		Commits:     remote.Commits,
	}
}

func (uc *PRUseCase) fillTimestamps(pr *domain.PullRequest) {
	now := uc.now()
	if pr.CreatedAt.IsZero() {
		pr.CreatedAt = now
	}
	if pr.UpdatedAt.IsZero() {
		pr.UpdatedAt = pr.CreatedAt
	}
	if pr.LastChecked.IsZero() {
		pr.LastChecked = now
	}
}

// mergeStored fills the fields an update left out from the stored PR.
func mergeStored(pr, stored *domain.PullRequest) *domain.PullRequest {
	merged := *pr
	merged.FellowID = stored.FellowID
	if merged.Username == "" {
		merged.Username = stored.Username
	}
	if merged.Title == "" {
		merged.Title = stored.Title
	}
	if merged.HTMLURL == "" {
		merged.HTMLURL = stored.HTMLURL
	}
	if merged.MergedAt == nil {
		merged.MergedAt = stored.MergedAt
	}
	if merged.CreatedAt.IsZero() {
		merged.CreatedAt = stored.CreatedAt
	}
	if merged.UpdatedAt.IsZero() {
		merged.UpdatedAt = stored.UpdatedAt
	}
	if merged.LastChecked.IsZero() {
		merged.LastChecked = stored.LastChecked
	}
	if merged.Commits == nil {
		merged.Commits = stored.Commits
	}
	return &merged
}

func validatePR(pr *domain.PullRequest) error {
	if _, _, ok := domain.SplitRepository(pr.Repository); !ok {
		return domain.ErrInvalidRepository
	}
	if pr.Number <= 0 {
		return domain.ErrInvalidPRNumber
	}
	if !domain.ValidState(pr.State) {
		return domain.ErrInvalidPRState
	}
	return validateCommits(pr.Commits)
}

func validateCommits(commits []*domain.Commit) error {
	for _, c := range commits {
		if c == nil || strings.TrimSpace(c.SHA) == "" || c.AuthorDate.IsZero() {
			return domain.ErrInvalidCommit
		}
	}
	return nil
}

// resolveCoordinates prefers the URL and falls back to owner/repo/number.
func resolveCoordinates(coords domain.PRCoordinates) (owner, repo string, number int, err error) {
	if coords.URL != "" {
		return gateway.ParsePullRequestURL(coords.URL)
	}
	if coords.Owner == "" || coords.Repo == "" || coords.Number <= 0 {
		return "", "", 0, domain.ErrMissingPRCoordinates
	}
	return coords.Owner, coords.Repo, coords.Number, nil
}
