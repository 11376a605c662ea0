package domain

type Question struct {
	Name             string   `json:"name,omitempty"`
	Text             string   `json:"text,omitempty"`
	Author           *Author  `json:"author,omitempty"`
	CreateTime       string   `json:"createTime,omitempty"`
	UpvoteCount      int      `json:"upvoteCount,omitempty"`
	TotalAnswerCount int      `json:"totalAnswerCount,omitempty"`
	TopAnswers       []Answer `json:"topAnswers,omitempty"`
}

type Answer struct {
	Name       string  `json:"name,omitempty"`
	Text       string  `json:"text,omitempty"`
	Author     *Author `json:"author,omitempty"`
	CreateTime string  `json:"createTime,omitempty"`
}

type Author struct {
	DisplayName string `json:"displayName,omitempty"`
	// MERCHANT quando a resposta é do dono do perfil
	Type string `json:"type,omitempty"`
}
