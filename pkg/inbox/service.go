// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package inbox

import (
	"context"
	"strings"
	"time"

	"github.com/Miky-dev/GestIA/internal/authorization"
	"github.com/Miky-dev/GestIA/internal/cache"
	"github.com/Miky-dev/GestIA/internal/db"
	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/monitoring"
	"github.com/Miky-dev/GestIA/internal/storage"
	"github.com/Miky-dev/GestIA/internal/tracing"
	"github.com/Miky-dev/GestIA/internal/types"
	"github.com/Miky-dev/GestIA/internal/validation"
)

const listKey = "list"

type Service struct {
	storage StorageInterface
	tx      db.TxRunnerInterface
	authz   AuthorizerInterface
	views   cache.ViewCacheInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

// ListConversations returns the inbox, most recent activity first.
func (s *Service) ListConversations(ctx context.Context, session *types.Session) ([]*types.Conversation, error) {
	ctx, span := s.tracer.Start(ctx, "inbox.Service.ListConversations")
	defer span.End()

	tenantID, err := s.authz.Authorize(ctx, session, authorization.CONVERSATION_READ)
	if err != nil {
		return nil, err
	}

	conversations := make([]*types.Conversation, 0)
	if s.views.Get(ctx, tenantID, cache.ViewInbox, listKey, &conversations) {
		return conversations, nil
	}

	conversations, err = s.storage.ListConversations(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	s.views.Set(ctx, tenantID, cache.ViewInbox, listKey, conversations)

	return conversations, nil
}

// GetConversation returns one conversation with its messages, oldest first.
func (s *Service) GetConversation(ctx context.Context, session *types.Session, id string) (*types.Conversation, error) {
	ctx, span := s.tracer.Start(ctx, "inbox.Service.GetConversation")
	defer span.End()

	tenantID, err := s.authz.Authorize(ctx, session, authorization.CONVERSATION_READ)
	if err != nil {
		return nil, err
	}

	c, err := s.storage.GetConversation(ctx, tenantID, id)
	if err != nil {
		return nil, storage.DomainError(err, "")
	}

	c.Messages, err = s.storage.ListMessages(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) StartConversation(ctx context.Context, session *types.Session, req *StartConversationRequest) (*types.Conversation, error) {
	ctx, span := s.tracer.Start(ctx, "inbox.Service.StartConversation")
	defer span.End()

	tenantID, err := s.authz.Authorize(ctx, session, authorization.CONVERSATION_WRITE)
	if err != nil {
		return nil, err
	}

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	created, err := s.storage.CreateConversation(ctx, tenantID, &types.Conversation{
		CustomerID: req.CustomerID,
		Channel:    types.Channel(req.Channel),
		Status:     types.ConversationOpen,
	})
	if err != nil {
		return nil, storage.DomainError(err, "")
	}

	s.views.Invalidate(ctx, tenantID, cache.ViewInbox, cache.ViewDashboard)

	return created, nil
}

// SendMessage records an outbound reply and moves the conversation to
// PENDING in the same transaction.
func (s *Service) SendMessage(ctx context.Context, session *types.Session, conversationID string, req *SendMessageRequest) (*types.Message, error) {
	ctx, span := s.tracer.Start(ctx, "inbox.Service.SendMessage")
	defer span.End()

	tenantID, err := s.authz.Authorize(ctx, session, authorization.CONVERSATION_WRITE)
	if err != nil {
		return nil, err
	}

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, types.NewValidationError("content", "must not be blank")
	}

	var sent *types.Message

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		m, err := s.storage.CreateMessage(ctx, tenantID, &types.Message{
			ConversationID: conversationID,
			Direction:      types.MessageOutbound,
			Content:        content,
			Status:         types.MessageSent,
		})
		if err != nil {
			return err
		}

		if err := s.storage.UpdateConversationActivity(ctx, tenantID, conversationID, s.now(), types.ConversationPending); err != nil {
			return err
		}

		sent = m
		return nil
	})
	if err != nil {
		return nil, storage.DomainError(err, "")
	}

	s.views.Invalidate(ctx, tenantID, cache.ViewInbox, cache.ViewDashboard)

	return sent, nil
}

func (s *Service) AssignConversation(ctx context.Context, session *types.Session, conversationID string, req *AssignRequest) (*types.Conversation, error) {
	ctx, span := s.tracer.Start(ctx, "inbox.Service.AssignConversation")
	defer span.End()

	tenantID, err := s.authz.Authorize(ctx, session, authorization.CONVERSATION_WRITE)
	if err != nil {
		return nil, err
	}

	req.normalize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	updated, err := s.storage.AssignConversation(ctx, tenantID, conversationID, req.AssigneeID)
	if err != nil {
		return nil, storage.DomainError(err, "")
	}

	s.views.Invalidate(ctx, tenantID, cache.ViewInbox, cache.ViewDashboard)

	return updated, nil
}

func (s *Service) SetConversationStatus(ctx context.Context, session *types.Session, conversationID string, req *StatusRequest) (*types.Conversation, error) {
	ctx, span := s.tracer.Start(ctx, "inbox.Service.SetConversationStatus")
	defer span.End()

	tenantID, err := s.authz.Authorize(ctx, session, authorization.CONVERSATION_WRITE)
	if err != nil {
		return nil, err
	}

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	updated, err := s.storage.SetConversationStatus(ctx, tenantID, conversationID, types.ConversationStatus(req.Status))
	if err != nil {
		return nil, storage.DomainError(err, "")
	}

	s.views.Invalidate(ctx, tenantID, cache.ViewInbox, cache.ViewDashboard)

	return updated, nil
}

func NewService(
	storage StorageInterface,
	tx db.TxRunnerInterface,
	authz AuthorizerInterface,
	views cache.ViewCacheInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.tx = tx
	s.authz = authz
	s.views = views
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
