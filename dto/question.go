package dto

type CreateQuestionRequest struct {
	Title string   `json:"title" binding:"required"`
	Body  string   `json:"body" binding:"required"`
	Tags  []string `json:"tags" binding:"required,min=1,dive,tagname"`
}
