package handler

import "github.com/gin-gonic/gin"

// Handlers groups every HTTP handler the API mounts.
type Handlers struct {
	System      *SystemHandler
	Students    *StudentHandler
	Courses     *CourseHandler
	Enrollments *EnrollmentHandler
	Grades      *GradeHandler
	Transcripts *TranscriptHandler
}

// RouteOptions controls the ambient routes.
type RouteOptions struct {
	APIPrefix   string
	MetricsPath string
}

// RegisterRoutes mounts the ambient endpoints at the root and the resource
// endpoints under the API prefix.
func RegisterRoutes(r gin.IRouter, h Handlers, opts RouteOptions) {
	if h.System != nil {
		r.GET("/", h.System.Welcome)
		r.GET("/info", h.System.Info)
		r.GET("/health", h.System.Health)
		r.GET("/ready", h.System.Ready)
		if opts.MetricsPath != "" {
			r.GET(opts.MetricsPath, h.System.Prometheus)
		}
	}

	api := r.Group(opts.APIPrefix)

	if h.Students != nil {
		students := api.Group("/students")
		students.GET("", h.Students.Search)
		students.POST("", h.Students.Create)
		students.GET("/:id", h.Students.Get)
		students.PUT("/:id", h.Students.Update)
		students.DELETE("/:id", h.Students.Delete)
		students.PATCH("/:id/status", h.Students.ChangeStatus)
		if h.Transcripts != nil {
			students.GET("/:id/transcript", h.Transcripts.Export)
		}
	}

	if h.Courses != nil {
		courses := api.Group("/courses")
		courses.GET("", h.Courses.Search)
		courses.POST("", h.Courses.Create)
		courses.GET("/:id", h.Courses.Get)
		courses.PUT("/:id", h.Courses.Update)
		courses.DELETE("/:id", h.Courses.Delete)
		courses.PATCH("/:id/active", h.Courses.SetActive)
	}

	if h.Enrollments != nil {
		enrollments := api.Group("/enrollments")
		enrollments.GET("", h.Enrollments.Search)
		enrollments.POST("", h.Enrollments.Create)
		enrollments.GET("/:id", h.Enrollments.Get)
		enrollments.PUT("/:id", h.Enrollments.Update)
		enrollments.PATCH("/:id/status", h.Enrollments.ChangeStatus)
		if h.Grades != nil {
			enrollments.GET("/:id/grades/latest", h.Grades.Latest)
		}
	}

	if h.Grades != nil {
		grades := api.Group("/grades")
		grades.GET("", h.Grades.Search)
		grades.POST("", h.Grades.Create)
		grades.GET("/:id", h.Grades.Get)
		grades.PUT("/:id", h.Grades.Update)
	}
}
