package domain

type LocalPost struct {
	Name         string        `json:"name,omitempty"`
	Summary      string        `json:"summary,omitempty"`
	TopicType    string        `json:"topicType,omitempty"`
	State        string        `json:"state,omitempty"`
	CreateTime   string        `json:"createTime,omitempty"`
	UpdateTime   string        `json:"updateTime,omitempty"`
	Media        []PostMedia   `json:"media,omitempty"`
	CallToAction *CallToAction `json:"callToAction,omitempty"`
}

type PostMedia struct {
	GoogleURL   string `json:"googleUrl,omitempty"`
	SourceURL   string `json:"sourceUrl,omitempty"`
	MediaFormat string `json:"mediaFormat,omitempty"`
}

type CallToAction struct {
	ActionType string `json:"actionType,omitempty"`
	URL        string `json:"url,omitempty"`
}
