package handler

// errorResponse is the envelope for validation and not-found errors.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse carries outcome messages and auth failures.
type messageResponse struct {
	Message string `json:"message"`
}

type createdResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" validate:"notblank"`
	Email    string `json:"email"    validate:"notblank"`
	Password string `json:"password" validate:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Message string `json:"message,omitempty"`
	Token   string `json:"token"`
}

// --- Users ---

type createUserRequest struct {
	Username string `json:"username" validate:"notblank"`
	Email    string `json:"email"    validate:"notblank"`
	Password string `json:"password" validate:"password"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin"`
}

type updateUserRequest struct {
	Email    string `json:"email"    validate:"notblank"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin"`
	Password string `json:"password" validate:"omitempty,password"`
}

type userResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

// --- Blog posts ---

type postRequest struct {
	Title   string   `json:"title"   validate:"notblank"`
	Content string   `json:"content" validate:"notblank"`
	Author  string   `json:"author"`
	Tags    []string `json:"tags"`
}

type postResponse struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Author    string   `json:"author"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at,omitempty"`
}

// --- Comments ---

type commentRequest struct {
	CommenterName string `json:"commenter_name" validate:"notblank"`
	CommentText   string `json:"comment_text"   validate:"notblank"`
	BlogPostID    string `json:"blog_post_id"`
}

type commentResponse struct {
	ID            string `json:"id"`
	CommenterName string `json:"commenter_name"`
	CommentText   string `json:"comment_text"`
	BlogPostID    string `json:"blog_post_id"`
	CreatedAt     string `json:"created_at,omitempty"`
}
