package request

type CreateCloudRequest struct {
	Movie     string   `json:"movie" validate:"required,max=200"`
	Stopwords []string `json:"stopwords,omitempty" validate:"omitempty,max=500,dive,required"`
	TopN      int      `json:"top_n,omitempty" validate:"omitempty,min=1,max=200"`
}
