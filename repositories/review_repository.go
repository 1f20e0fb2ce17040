package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mouizahmed/ratethatclass-sub000/models"
	"github.com/mouizahmed/ratethatclass-sub000/utils"
)

var reviewSortKeys = map[string]string{
	"date_uploaded":  "reviews.date_uploaded",
	"votes":          "reviews.votes",
	"overall_score":  "reviews.overall_score",
	"easy_score":     "reviews.easy_score",
	"interest_score": "reviews.interest_score",
	"useful_score":   "reviews.useful_score",
}

// ReviewFilters narrows course review listings. Zero values mean no filter.
type ReviewFilters struct {
	ProfessorID    string
	Term           string
	DeliveryMethod string
}

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

const reviewSelect = `reviews.*,
	professors.professor_name AS professor_name,
	courses.course_name AS course_name,
	courses.course_tag AS course_tag,
	departments.department_id AS department_id,
	departments.department_name AS department_name,
	universities.university_id AS university_id,
	universities.university_name AS university_name`

func (r *ReviewRepository) withContext() *gorm.DB {
	return r.DB.Model(&models.Review{}).
		Select(reviewSelect).
		Joins("LEFT JOIN professors ON professors.professor_id = reviews.professor_id").
		Joins("JOIN courses ON courses.course_id = reviews.course_id").
		Joins("JOIN departments ON departments.department_id = courses.department_id").
		Joins("JOIN universities ON universities.university_id = departments.university_id")
}

func (r *ReviewRepository) ListPaginated(p utils.PageParams) ([]models.Review, int64, error) {
	var total int64
	if err := r.DB.Model(&models.Review{}).Count(&total).Error; err != nil {
		return nil, 0, utils.NewInternalError("failed to count reviews: %v", err)
	}

	order := utils.OrderClause(reviewSortKeys, p.SortBy, p.SortOrder,
		"date_uploaded", "reviews.review_id ASC")

	var reviews []models.Review
	err := r.withContext().Order(order).Limit(p.Limit).Offset(p.Offset()).Find(&reviews).Error
	if err != nil {
		return nil, 0, utils.NewInternalError("failed to list reviews: %v", err)
	}
	return reviews, total, nil
}

// ByCourse lists a course's reviews. When viewerID is non-empty the viewer's
// own vote on each review is joined in so the client can render vote state.
func (r *ReviewRepository) ByCourse(courseID, viewerID string, f ReviewFilters, p utils.PageParams) ([]models.Review, int64, error) {
	applyFilters := func(q *gorm.DB) *gorm.DB {
		q = q.Where("reviews.course_id = ?", courseID)
		if f.ProfessorID != "" {
			q = q.Where("reviews.professor_id = ?", f.ProfessorID)
		}
		if f.Term != "" {
			q = q.Where("reviews.term_taken = ?", f.Term)
		}
		if f.DeliveryMethod != "" {
			q = q.Where("reviews.delivery_method = ?", f.DeliveryMethod)
		}
		return q
	}

	var total int64
	if err := applyFilters(r.DB.Model(&models.Review{})).Count(&total).Error; err != nil {
		return nil, 0, utils.NewInternalError("failed to count reviews: %v", err)
	}

	query := applyFilters(r.withContext())
	if viewerID != "" {
		query = query.
			Select(reviewSelect + ", user_votes.vote AS vote").
			Joins("LEFT JOIN user_votes ON user_votes.review_id = reviews.review_id AND user_votes.user_id = ?", viewerID)
	}

	order := utils.OrderClause(reviewSortKeys, p.SortBy, p.SortOrder,
		"date_uploaded", "reviews.review_id ASC")

	var reviews []models.Review
	err := query.Order(order).Limit(p.Limit).Offset(p.Offset()).Find(&reviews).Error
	if err != nil {
		return nil, 0, utils.NewInternalError("failed to list reviews: %v", err)
	}
	return reviews, total, nil
}

// insertReviewWithAuthorVote writes a review and the author's implicit
// up-vote row. The tally starts at 1 to match that row.
func insertReviewWithAuthorVote(tx *gorm.DB, review *models.Review) error {
	review.Votes = 1
	if err := tx.Create(review).Error; err != nil {
		return utils.NewInternalError("failed to create review: %v", err)
	}
	if review.UserID == nil {
		return utils.NewInternalError("review author missing")
	}
	vote := models.UserVote{
		UserID:   *review.UserID,
		ReviewID: review.ReviewID,
		Vote:     models.VoteUp,
	}
	if err := tx.Create(&vote).Error; err != nil {
		return utils.NewInternalError("failed to create author vote: %v", err)
	}
	return nil
}

// Create inserts a review for an existing course, get-or-creating the named
// professor within that course.
func (r *ReviewRepository) Create(review *models.Review, professorName, userID string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Course{}).
			Where("course_id = ?", review.CourseID).
			Count(&count).Error; err != nil {
			return utils.NewInternalError("failed to check course: %v", err)
		}
		if count == 0 {
			return utils.NewNotFoundError("course with ID %s not found", review.CourseID)
		}

		review.UserID = &userID
		if professorName != "" {
			professor, err := getOrCreateProfessor(tx, review.CourseID, professorName)
			if err != nil {
				return err
			}
			review.ProfessorID = &professor.ProfessorID
		}

		return insertReviewWithAuthorVote(tx, review)
	})
}

// HandleVote applies one vote request inside a single transaction. The review
// row is locked so concurrent votes on the same review serialize, keeping the
// votes tally equal to the sum of its user_votes rows.
func (r *ReviewRepository) HandleVote(userID, email, reviewID string, requested models.VoteType) (models.Review, error) {
	var review models.Review

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := ensureUser(tx, userID, email); err != nil {
			return err
		}

		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("review_id = ?", reviewID).
			First(&review).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError("review with ID %s not found", reviewID)
		}
		if err != nil {
			return utils.NewInternalError("failed to get review: %v", err)
		}

		var existing models.UserVote
		current := models.VoteType("")
		err = tx.Where("user_id = ? AND review_id = ?", userID, reviewID).
			First(&existing).Error
		if err == nil {
			current = existing.Vote
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewInternalError("failed to get vote: %v", err)
		}

		action, delta := models.VoteTransition(current, requested)
		switch action {
		case models.VoteInsert:
			vote := models.UserVote{UserID: userID, ReviewID: reviewID, Vote: requested}
			if err := tx.Create(&vote).Error; err != nil {
				return utils.NewInternalError("failed to create vote: %v", err)
			}
		case models.VoteRemove:
			if err := tx.Delete(&models.UserVote{}, "vote_id = ?", existing.VoteID).Error; err != nil {
				return utils.NewInternalError("failed to remove vote: %v", err)
			}
		case models.VoteSwitch:
			err := tx.Model(&models.UserVote{}).
				Where("vote_id = ?", existing.VoteID).
				Update("vote", requested).Error
			if err != nil {
				return utils.NewInternalError("failed to update vote: %v", err)
			}
		}

		err = tx.Model(&models.Review{}).
			Where("review_id = ?", reviewID).
			UpdateColumn("votes", gorm.Expr("votes + ?", delta)).Error
		if err != nil {
			return utils.NewInternalError("failed to update vote tally: %v", err)
		}

		review.Votes += delta
		return nil
	})
	if err != nil {
		return models.Review{}, err
	}
	return review, nil
}

// UserVotes returns the caller's vote per review for the given review ids.
// Reviews the user has not voted on are absent from the map.
func (r *ReviewRepository) UserVotes(userID string, reviewIDs []string) (map[string]models.VoteType, error) {
	votes := make(map[string]models.VoteType, len(reviewIDs))
	if len(reviewIDs) == 0 {
		return votes, nil
	}

	var rows []models.UserVote
	err := r.DB.Where("user_id = ? AND review_id IN ?", userID, reviewIDs).Find(&rows).Error
	if err != nil {
		return nil, utils.NewInternalError("failed to get votes: %v", err)
	}
	for _, row := range rows {
		votes[row.ReviewID] = row.Vote
	}
	return votes, nil
}

func (r *ReviewRepository) ByUser(userID string, p utils.PageParams) ([]models.Review, int64, error) {
	var total int64
	err := r.DB.Model(&models.Review{}).Where("reviews.user_id = ?", userID).Count(&total).Error
	if err != nil {
		return nil, 0, utils.NewInternalError("failed to count reviews: %v", err)
	}

	order := utils.OrderClause(reviewSortKeys, p.SortBy, p.SortOrder,
		"date_uploaded", "reviews.review_id ASC")

	var reviews []models.Review
	err = r.withContext().
		Where("reviews.user_id = ?", userID).
		Order(order).Limit(p.Limit).Offset(p.Offset()).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, utils.NewInternalError("failed to list reviews: %v", err)
	}
	return reviews, total, nil
}

// VotedReviews lists reviews the user has voted on in the given direction.
func (r *ReviewRepository) VotedReviews(userID string, vote models.VoteType, p utils.PageParams) ([]models.Review, int64, error) {
	voteJoin := "JOIN user_votes ON user_votes.review_id = reviews.review_id AND user_votes.user_id = ? AND user_votes.vote = ?"

	var total int64
	err := r.DB.Model(&models.Review{}).
		Joins(voteJoin, userID, vote).
		Count(&total).Error
	if err != nil {
		return nil, 0, utils.NewInternalError("failed to count voted reviews: %v", err)
	}

	order := utils.OrderClause(reviewSortKeys, p.SortBy, p.SortOrder,
		"date_uploaded", "reviews.review_id ASC")

	var reviews []models.Review
	err = r.withContext().
		Joins(voteJoin, userID, vote).
		Order(order).Limit(p.Limit).Offset(p.Offset()).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, utils.NewInternalError("failed to list voted reviews: %v", err)
	}
	return reviews, total, nil
}

// Delete removes a review the caller owns, along with its vote rows.
func (r *ReviewRepository) Delete(reviewID, userID string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var review models.Review
		err := tx.Where("review_id = ?", reviewID).First(&review).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError("review with ID %s not found", reviewID)
		}
		if err != nil {
			return utils.NewInternalError("failed to get review: %v", err)
		}
		if review.UserID == nil || *review.UserID != userID {
			return utils.NewForbiddenError("you can only delete your own reviews")
		}

		if err := tx.Delete(&models.UserVote{}, "review_id = ?", reviewID).Error; err != nil {
			return utils.NewInternalError("failed to delete votes: %v", err)
		}
		if err := tx.Delete(&models.Review{}, "review_id = ?", reviewID).Error; err != nil {
			return utils.NewInternalError("failed to delete review: %v", err)
		}
		return nil
	})
}
