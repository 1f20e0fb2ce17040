package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mouizahmed/ratethatclass-sub000/models"
	"github.com/mouizahmed/ratethatclass-sub000/utils"
)

// universitySortKeys maps public sort_by values onto SQL expressions. Only
// keys present here may reach the ORDER BY clause.
var universitySortKeys = map[string]string{
	"university_name": "universities.university_name",
	"review_num":      "COUNT(reviews.review_id)",
}

type UniversityRepository struct {
	DB *gorm.DB
}

func NewUniversityRepository(db *gorm.DB) *UniversityRepository {
	return &UniversityRepository{DB: db}
}

func (r *UniversityRepository) withReviewCount() *gorm.DB {
	return r.DB.Model(&models.University{}).
		Select("universities.*, COUNT(reviews.review_id) AS review_num").
		Joins("LEFT JOIN departments ON departments.university_id = universities.university_id").
		Joins("LEFT JOIN courses ON courses.department_id = departments.department_id").
		Joins("LEFT JOIN reviews ON reviews.course_id = courses.course_id").
		Group("universities.university_id")
}

func (r *UniversityRepository) List() ([]models.University, error) {
	var universities []models.University
	err := r.withReviewCount().
		Order("universities.university_name ASC").
		Find(&universities).Error
	if err != nil {
		return nil, utils.NewInternalError("failed to list universities: %v", err)
	}
	return universities, nil
}

func (r *UniversityRepository) ListPaginated(p utils.PageParams) ([]models.University, int64, error) {
	base := r.DB.Model(&models.University{})
	if p.Search != "" {
		base = base.Where("universities.university_name ILIKE ?", "%"+p.Search+"%")
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, utils.NewInternalError("failed to count universities: %v", err)
	}

	query := r.withReviewCount()
	if p.Search != "" {
		query = query.Where("universities.university_name ILIKE ?", "%"+p.Search+"%")
	}

	order := utils.OrderClause(universitySortKeys, p.SortBy, p.SortOrder,
		"review_num", "universities.university_name ASC")

	var universities []models.University
	err := query.Order(order).Limit(p.Limit).Offset(p.Offset()).Find(&universities).Error
	if err != nil {
		return nil, 0, utils.NewInternalError("failed to list universities: %v", err)
	}
	return universities, total, nil
}

func (r *UniversityRepository) GetByID(universityID string) (models.University, error) {
	var university models.University
	err := r.withReviewCount().
		Where("universities.university_id = ?", universityID).
		First(&university).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return university, utils.NewNotFoundError("university with ID %s not found", universityID)
	}
	if err != nil {
		return university, utils.NewInternalError("failed to get university: %v", err)
	}
	return university, nil
}

func (r *UniversityRepository) GetByName(name string) (models.University, error) {
	var university models.University
	err := r.withReviewCount().
		Where("universities.university_name ILIKE ?", name).
		First(&university).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return university, utils.NewNotFoundError("university %q not found", name)
	}
	if err != nil {
		return university, utils.NewInternalError("failed to get university: %v", err)
	}
	return university, nil
}

func (r *UniversityRepository) Domains() ([]string, error) {
	var domains []string
	err := r.DB.Model(&models.University{}).
		Where("domain <> ''").
		Order("domain ASC").
		Distinct().
		Pluck("domain", &domains).Error
	if err != nil {
		return nil, utils.NewInternalError("failed to list domains: %v", err)
	}
	return domains, nil
}

// ListRequests returns pending university requests with the caller's token
// joined in so the client can tell which requests it already voted for.
func (r *UniversityRepository) ListRequests(userToken string) ([]models.UniversityRequest, error) {
	var requests []models.UniversityRequest
	err := r.DB.Model(&models.UniversityRequest{}).
		Select("university_requests.*, user_university_requests.user_token AS user_token").
		Joins("LEFT JOIN user_university_requests ON user_university_requests.university_id = university_requests.university_id AND user_university_requests.user_token = ?", userToken).
		Order("university_requests.total_votes DESC, university_requests.university_name ASC").
		Find(&requests).Error
	if err != nil {
		return nil, utils.NewInternalError("failed to list university requests: %v", err)
	}
	return requests, nil
}

// CreateRequest registers a new university request unless the university
// already exists or has already been requested.
func (r *UniversityRepository) CreateRequest(name, userToken string) (models.UniversityRequest, error) {
	var request models.UniversityRequest

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.University{}).
			Where("university_name ILIKE ?", name).
			Count(&count).Error; err != nil {
			return utils.NewInternalError("failed to check universities: %v", err)
		}
		if count > 0 {
			return utils.NewConflictError("university %q already exists", name)
		}

		if err := tx.Model(&models.UniversityRequest{}).
			Where("university_name ILIKE ?", name).
			Count(&count).Error; err != nil {
			return utils.NewInternalError("failed to check university requests: %v", err)
		}
		if count > 0 {
			return utils.NewConflictError("university %q has already been requested", name)
		}

		request = models.UniversityRequest{UniversityName: name, TotalVotes: 1}
		if err := tx.Create(&request).Error; err != nil {
			return utils.NewInternalError("failed to create university request: %v", err)
		}

		vote := models.UserUniversityRequest{UniversityID: request.UniversityID, UserToken: userToken}
		if err := tx.Create(&vote).Error; err != nil {
			return utils.NewInternalError("failed to record request vote: %v", err)
		}
		return nil
	})
	if err != nil {
		return models.UniversityRequest{}, err
	}
	request.UserToken = &userToken
	return request, nil
}

// VoteRequest adds one vote to a pending request, keyed by the caller's
// browser token. A token may vote at most once per request.
func (r *UniversityRepository) VoteRequest(universityID, userToken string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var request models.UniversityRequest
		err := tx.Where("university_id = ?", universityID).First(&request).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError("university request with ID %s not found", universityID)
		}
		if err != nil {
			return utils.NewInternalError("failed to get university request: %v", err)
		}

		var count int64
		if err := tx.Model(&models.UserUniversityRequest{}).
			Where("university_id = ? AND user_token = ?", universityID, userToken).
			Count(&count).Error; err != nil {
			return utils.NewInternalError("failed to check request vote: %v", err)
		}
		if count > 0 {
			return utils.NewConflictError("you have already voted for this university")
		}

		vote := models.UserUniversityRequest{UniversityID: universityID, UserToken: userToken}
		if err := tx.Create(&vote).Error; err != nil {
			return utils.NewInternalError("failed to record request vote: %v", err)
		}

		err = tx.Model(&models.UniversityRequest{}).
			Where("university_id = ?", universityID).
			UpdateColumn("total_votes", gorm.Expr("total_votes + 1")).Error
		if err != nil {
			return utils.NewInternalError("failed to update request votes: %v", err)
		}
		return nil
	})
}
