package event

type UserLoggedInEvent struct {
	BaseEvent
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
	IsAdmin   bool   `json:"isAdmin"`
}

func NewUserLoggedInEvent(sessionID, userID string, isAdmin bool) *UserLoggedInEvent {
	return &UserLoggedInEvent{
		BaseEvent: *NewBaseEvent(sessionID, UserLoggedInEventName),
		SessionID: sessionID,
		UserID:    userID,
		IsAdmin:   isAdmin,
	}
}

func (e *UserLoggedInEvent) Type() EventType {
	return UserLoggedInEventName
}

type UserLoggedOutEvent struct {
	BaseEvent
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
}

func NewUserLoggedOutEvent(sessionID, userID string) *UserLoggedOutEvent {
	return &UserLoggedOutEvent{
		BaseEvent: *NewBaseEvent(sessionID, UserLoggedOutEventName),
		SessionID: sessionID,
		UserID:    userID,
	}
}

func (e *UserLoggedOutEvent) Type() EventType {
	return UserLoggedOutEventName
}

type UserRegisteredEvent struct {
	BaseEvent
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
	Email     string `json:"email"`
}

func NewUserRegisteredEvent(sessionID, userID, email string) *UserRegisteredEvent {
	return &UserRegisteredEvent{
		BaseEvent: *NewBaseEvent(sessionID, UserRegisteredEventName),
		SessionID: sessionID,
		UserID:    userID,
		Email:     email,
	}
}

func (e *UserRegisteredEvent) Type() EventType {
	return UserRegisteredEventName
}
