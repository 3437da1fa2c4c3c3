// file: services/browse.go
package services

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"InnoHub/dto"
	"InnoHub/logger"
	"InnoHub/models"
	"InnoHub/utils"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	browseStateKeyPrefix = "browse:state:"
	browseStateTTL       = 30 * time.Minute

	categoriesCacheKey = "browse:categories"
	categoriesCacheTTL = 5 * time.Minute
)

// StateStore keeps one browser component state per viewer.
type StateStore interface {
	Get(ctx context.Context, userID uint32) (dto.ListState, bool)
	Put(ctx context.Context, userID uint32, state dto.ListState)
}

// RedisStateStore serializes the state as a JSON blob with a sliding TTL.
type RedisStateStore struct {
	rdb *redis.Client
}

func NewRedisStateStore(rdb *redis.Client) *RedisStateStore {
	return &RedisStateStore{rdb: rdb}
}

func (s *RedisStateStore) key(userID uint32) string {
	return browseStateKeyPrefix + strconv.FormatUint(uint64(userID), 10)
}

func (s *RedisStateStore) Get(ctx context.Context, userID uint32) (dto.ListState, bool) {
	raw, err := s.rdb.Get(ctx, s.key(userID)).Result()
	if err != nil {
		return dto.ListState{}, false
	}
	var state dto.ListState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return dto.ListState{}, false
	}
	return state, true
}

func (s *RedisStateStore) Put(ctx context.Context, userID uint32, state dto.ListState) {
	raw, err := json.Marshal(state)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, s.key(userID), raw, browseStateTTL).Err(); err != nil {
		logger.Warn("Failed to persist browse state", "user_id", userID, "error", err)
	}
}

// Condition is one conjunctive WHERE clause of the browser query, kept as
// data so filter assembly is inspectable without a database.
type Condition struct {
	Query string
	Args  []interface{}
}

// BuildConditions assembles the conjunctive filter set of the browser:
// a disjunctive case-insensitive search clause over title, description
// and category, plus exact status and category matches when not "all".
func BuildConditions(state dto.ListState) []Condition {
	var conds []Condition
	if q := strings.TrimSpace(state.Search); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		conds = append(conds, Condition{
			Query: "(LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?)",
			Args:  []interface{}{like, like, like},
		})
	}
	if state.Status != "" && state.Status != "all" {
		conds = append(conds, Condition{Query: "status = ?", Args: []interface{}{state.Status}})
	}
	if state.Category != "" && state.Category != "all" {
		conds = append(conds, Condition{Query: "category = ?", Args: []interface{}{state.Category}})
	}
	return conds
}

// OrderClause maps the state's sort selection onto a safe ORDER BY. Only
// whitelisted columns ever reach the SQL string.
func OrderClause(state dto.ListState) string {
	column, ok := dto.AllowedSortFields[state.SortField]
	if !ok {
		column = "created_at"
	}
	dir := "ASC"
	if state.SortDir == "desc" {
		dir = "DESC"
	}
	return column + " " + dir
}

// BrowseService recomputes the challenge browser page from a component
// state.
type BrowseService struct {
	db     *gorm.DB
	rdb    *redis.Client
	states StateStore
}

func NewBrowseService(db *gorm.DB, rdb *redis.Client, states StateStore) *BrowseService {
	return &BrowseService{db: db, rdb: rdb, states: states}
}

func (b *BrowseService) States() StateStore {
	return b.states
}

// List runs the filtered, sorted, paginated query and assembles the card
// grid for the viewer.
func (b *BrowseService) List(ctx context.Context, viewerID uint32, viewerRole models.UserRole, state dto.ListState) (*dto.ChallengeListResp, error) {
	query := b.db.Model(&models.Challenge{})
	for _, cond := range BuildConditions(state) {
		query = query.Where(cond.Query, cond.Args...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var challenges []models.Challenge
	offset := (state.Page - 1) * dto.PageSize
	if err := query.Preload("Author").
		Order(OrderClause(state)).
		Offset(offset).Limit(dto.PageSize).
		Find(&challenges).Error; err != nil {
		return nil, err
	}

	// Viewer's submissions, bounded to the ids of the visible page.
	submitted := map[uint32]bool{}
	if len(challenges) > 0 {
		ids := make([]uint32, 0, len(challenges))
		for _, ch := range challenges {
			ids = append(ids, ch.ID)
		}
		var subs []models.ChallengeSubmission
		if err := b.db.Select("challenge_id").
			Where("challenge_id IN ? AND author_id = ?", ids, viewerID).
			Find(&subs).Error; err != nil {
			return nil, err
		}
		for _, sub := range subs {
			submitted[sub.ChallengeID] = true
		}
	}

	now := time.Now()
	items := make([]dto.ChallengeCard, 0, len(challenges))
	for _, ch := range challenges {
		items = append(items, buildCard(ch, submitted[ch.ID], now))
	}

	return &dto.ChallengeListResp{
		Total:      total,
		Page:       state.Page,
		PageSize:   dto.PageSize,
		State:      state,
		Categories: b.Categories(ctx),
		CanCreate:  models.HasAnyRole(viewerRole, models.ChallengeCreatorRoles),
		Items:      items,
	}, nil
}

// Categories returns the distinct category facet, cached in redis.
func (b *BrowseService) Categories(ctx context.Context) []string {
	if b.rdb != nil {
		if raw, err := b.rdb.Get(ctx, categoriesCacheKey).Result(); err == nil {
			var cached []string
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached
			}
		}
	}

	var categories []string
	if err := b.db.Model(&models.Challenge{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		logger.Error("Failed to load category facet", "error", err)
		return []string{}
	}

	if b.rdb != nil {
		if raw, err := json.Marshal(categories); err == nil {
			_ = b.rdb.Set(ctx, categoriesCacheKey, raw, categoriesCacheTTL).Err()
		}
	}
	return categories
}

// InvalidateCategories drops the facet cache after a challenge write.
func (b *BrowseService) InvalidateCategories(ctx context.Context) {
	if b.rdb != nil {
		_ = b.rdb.Del(ctx, categoriesCacheKey).Err()
	}
}

func buildCard(ch models.Challenge, hasSubmitted bool, now time.Time) dto.ChallengeCard {
	card := dto.ChallengeCard{
		ID:              ch.ID,
		Title:           ch.Title,
		Description:     ch.Description,
		Category:        ch.Category,
		Status:          string(ch.Status),
		StatusClass:     utils.StatusBadgeClass(ch.Status),
		Prize:           ch.Prize,
		AuthorName:      ch.Author.Username,
		SubmissionCount: ch.SubmissionCount,
		HasSubmitted:    hasSubmitted,
		CanSubmit:       ch.Status == models.ChallengeStatusActive && !hasSubmitted,
		ViewURL:         challengeViewURL(ch.ID),
	}
	if ch.Deadline != nil {
		card.Deadline = ch.Deadline.Format(time.RFC3339)
	}
	if label, ok := utils.DaysRemaining(ch.Deadline, now); ok {
		card.DaysRemaining = label
	}
	if card.CanSubmit {
		card.SubmitURL = challengeSubmitURL(ch.ID)
	}
	return card
}

func challengeViewURL(id uint32) string {
	return "/api/v1/challenges/" + strconv.FormatUint(uint64(id), 10)
}

func challengeSubmitURL(id uint32) string {
	return "/api/v1/challenges/" + strconv.FormatUint(uint64(id), 10) + "/submit"
}
