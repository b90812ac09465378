package handlers

import (
	"github.com/gin-gonic/gin"

	"nutrition-app-server/internal/middleware"
	"nutrition-app-server/internal/services"
	"nutrition-app-server/internal/utils"
)

// CourseHandler handles nutritionist course pages.
type CourseHandler struct {
	Courses *services.CourseService
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courses *services.CourseService) *CourseHandler {
	return &CourseHandler{Courses: courses}
}

// List shows the nutritionist's courses and the creation form.
func (h *CourseHandler) List(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	courses, err := h.Courses.CoursesOf(identity.Nutritionist.ID)
	if err != nil {
		utils.Fail(c, err, "/nutritionist_dashboard")
		return
	}

	utils.Render(c, "courses.html", gin.H{"courses": courses})
}

// Create adds a new course.
func (h *CourseHandler) Create(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	input := services.CreateCourseInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Price:       c.PostForm("price"),
		IsCertified: c.PostForm("is_certified") != "",
	}

	if _, err := h.Courses.Create(identity.Nutritionist.ID, input); err != nil {
		utils.Fail(c, err, "/courses")
		return
	}

	utils.Succeed(c, "Course created!", "/courses")
}

// AddModule appends a module to one of the nutritionist's courses.
func (h *CourseHandler) AddModule(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	courseID := c.Param("id")

	input := services.ModuleInput{
		Title:            c.PostForm("title"),
		Content:          c.PostForm("content"),
		Order:            c.PostForm("order"),
		IsLimitedContent: c.PostForm("is_limited_content") != "",
	}

	if _, err := h.Courses.AddModule(identity.Nutritionist.ID, courseID, input); err != nil {
		utils.Fail(c, err, "/courses")
		return
	}

	utils.Succeed(c, "Module added!", "/courses")
}
