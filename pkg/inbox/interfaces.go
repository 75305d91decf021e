// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package inbox

import (
	"context"
	"time"

	"github.com/Miky-dev/GestIA/internal/authorization"
	"github.com/Miky-dev/GestIA/internal/types"
)

type ServiceInterface interface {
	ListConversations(ctx context.Context, session *types.Session) ([]*types.Conversation, error)
	GetConversation(ctx context.Context, session *types.Session, id string) (*types.Conversation, error)
	StartConversation(ctx context.Context, session *types.Session, req *StartConversationRequest) (*types.Conversation, error)
	SendMessage(ctx context.Context, session *types.Session, conversationID string, req *SendMessageRequest) (*types.Message, error)
	AssignConversation(ctx context.Context, session *types.Session, conversationID string, req *AssignRequest) (*types.Conversation, error)
	SetConversationStatus(ctx context.Context, session *types.Session, conversationID string, req *StatusRequest) (*types.Conversation, error)
}

type StorageInterface interface {
	ListConversations(ctx context.Context, tenantID string) ([]*types.Conversation, error)
	GetConversation(ctx context.Context, tenantID, id string) (*types.Conversation, error)
	CreateConversation(ctx context.Context, tenantID string, c *types.Conversation) (*types.Conversation, error)
	UpdateConversationActivity(ctx context.Context, tenantID, id string, at time.Time, status types.ConversationStatus) error
	AssignConversation(ctx context.Context, tenantID, id string, assigneeID *string) (*types.Conversation, error)
	SetConversationStatus(ctx context.Context, tenantID, id string, status types.ConversationStatus) (*types.Conversation, error)
	ListMessages(ctx context.Context, tenantID, conversationID string) ([]*types.Message, error)
	CreateMessage(ctx context.Context, tenantID string, m *types.Message) (*types.Message, error)
}

type AuthorizerInterface interface {
	Authorize(ctx context.Context, session *types.Session, action authorization.Action) (string, error)
}
