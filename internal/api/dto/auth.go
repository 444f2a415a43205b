package dto

type CreateSessionReq struct {
	Code string `json:"code" binding:"required"`
}

type RedirectURLResp struct {
	RedirectURL string `json:"redirectUrl"`
}

// UserInfo is the identity record the hosted users service returns.
type UserInfo struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
