package http

type (
	// QueryGameRecordRequest struct - HTTP query request DTO
	QueryGameRecordRequest struct {
		ChannelID *string `json:"channel_id" form:"channel_id" query:"channel_id" validate:"omitempty,max=64"`
		Player    *string `json:"player" form:"player" query:"player" validate:"omitempty,max=100"`
		Outcome   *string `json:"outcome" form:"outcome" query:"outcome" validate:"omitempty,oneof=win draw concede"`

		Limit   *int    `json:"limit,omitempty" form:"limit" query:"limit" validate:"omitempty,gte=1,lte=100"`
		Page    *int    `json:"page,omitempty" form:"page" query:"page" validate:"omitempty,gte=1"`
		OrderBy *string `json:"order_by,omitempty" form:"order_by" query:"order_by" validate:"omitempty,oneof=finished_at moves channel_id"`
		Asc     *bool   `json:"asc,omitempty" form:"asc" query:"asc"`
	}

	// HistoryRequest struct - HTTP path request DTO
	HistoryRequest struct {
		ChannelID string `params:"channel" validate:"required,max=64"`
	}
)
