package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutrition-app-server/internal/apperr"
)

func TestCourseLifecycle(t *testing.T) {
	db, auth, _ := newServices(t)
	courses := NewCourseService(db)
	nina := registerNutritionist(t, auth, "drnina", "nina@x.com", "CRM123")
	paulo := registerNutritionist(t, auth, "drpaulo", "paulo@x.com", "CRM456")

	course, err := courses.Create(nina.ID, CreateCourseInput{
		Title: "Intro to Macros", Price: "49.90", IsCertified: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 49.90, course.Price)

	// Modules are returned in their explicit order, not insertion order.
	_, err = courses.AddModule(nina.ID, course.ID, ModuleInput{Title: "Fats", Order: "2"})
	require.NoError(t, err)
	_, err = courses.AddModule(nina.ID, course.ID, ModuleInput{Title: "Proteins", Order: "1", IsLimitedContent: true})
	require.NoError(t, err)

	_, err = courses.AddModule(paulo.ID, course.ID, ModuleInput{Title: "Hijack"})
	assert.True(t, apperr.IsKind(err, apperr.KindAuthorization))

	list, err := courses.CoursesOf(nina.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Modules, 2)
	assert.Equal(t, "Proteins", list[0].Modules[0].Title)
	assert.True(t, list[0].Modules[0].IsLimitedContent)

	empty, err := courses.CoursesOf(paulo.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCourseValidation(t *testing.T) {
	db, auth, _ := newServices(t)
	courses := NewCourseService(db)
	nina := registerNutritionist(t, auth, "drnina", "nina@x.com", "CRM123")

	_, err := courses.Create(nina.ID, CreateCourseInput{})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = courses.Create(nina.ID, CreateCourseInput{Title: "Course", Price: "free"})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = courses.AddModule(nina.ID, "missing-course", ModuleInput{Title: "Module"})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
