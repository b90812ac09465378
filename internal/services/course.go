package services

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"nutrition-app-server/internal/apperr"
	"nutrition-app-server/internal/models"
)

// CourseService manages nutritionist-authored courses and their modules.
type CourseService struct {
	DB *gorm.DB
}

// NewCourseService creates a new CourseService.
func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{DB: db}
}

// CoursesOf returns the nutritionist's courses, modules in order.
func (s *CourseService) CoursesOf(nutritionistID string) ([]models.Course, error) {
	var courses []models.Course
	err := s.DB.Preload("Modules", func(db *gorm.DB) *gorm.DB {
		return db.Order("module_order asc")
	}).
		Where("nutritionist_id = ?", nutritionistID).
		Order("created_at desc").
		Find(&courses).Error
	if err != nil {
		return nil, apperr.Persistence("failed to list courses", err)
	}
	return courses, nil
}

// CreateCourseInput carries the course form fields.
type CreateCourseInput struct {
	Title       string
	Description string
	Price       string
	IsCertified bool
}

// Create creates a course for the nutritionist.
func (s *CourseService) Create(nutritionistID string, input CreateCourseInput) (*models.Course, error) {
	if input.Title == "" {
		return nil, apperr.Validation("Course title is required.")
	}

	price := 0.0
	if input.Price != "" {
		parsed, err := strconv.ParseFloat(input.Price, 64)
		if err != nil || parsed < 0 {
			return nil, apperr.Validation("Price must be a non-negative number.")
		}
		price = parsed
	}

	course := models.Course{
		NutritionistID: nutritionistID,
		Title:          input.Title,
		Description:    input.Description,
		Price:          price,
		IsCertified:    input.IsCertified,
	}
	if err := s.DB.Create(&course).Error; err != nil {
		return nil, apperr.Persistence("failed to create course", err)
	}
	return &course, nil
}

// ModuleInput carries the course module form fields.
type ModuleInput struct {
	Title            string
	Content          string
	Order            string
	IsLimitedContent bool
}

// AddModule appends a module to a course owned by the nutritionist.
func (s *CourseService) AddModule(nutritionistID, courseID string, input ModuleInput) (*models.CourseModule, error) {
	if input.Title == "" {
		return nil, apperr.Validation("Module title is required.")
	}

	order := 0
	if input.Order != "" {
		parsed, err := strconv.Atoi(input.Order)
		if err != nil {
			return nil, apperr.Validation("Module order must be a whole number.")
		}
		order = parsed
	}

	var course models.Course
	if err := s.DB.First(&course, "id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Course not found.")
		}
		return nil, apperr.Persistence("failed to load course", err)
	}
	if course.NutritionistID != nutritionistID {
		return nil, apperr.Authorization("You can only add modules to your own courses.")
	}

	module := models.CourseModule{
		CourseID:         course.ID,
		Title:            input.Title,
		Content:          input.Content,
		Order:            order,
		IsLimitedContent: input.IsLimitedContent,
	}
	if err := s.DB.Create(&module).Error; err != nil {
		return nil, apperr.Persistence("failed to create course module", err)
	}
	return &module, nil
}
