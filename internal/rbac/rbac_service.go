package rbac

import (
	"fmt"
	"sync"

	"job-portal/internal/access"

	"github.com/casbin/casbin/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(actor access.Actor, res access.Resource, verb access.Verb) (bool, error)
	Policies() ([]PolicyResponse, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

var verbs = []access.Verb{access.VerbRead, access.VerbCreate, access.VerbUpdate, access.VerbDelete}

// SubjectKey is the casbin subject for an actor: its role, suffixed when the
// superuser flag is set.
func SubjectKey(actor access.Actor) string {
	if actor.IsSuperuser {
		return actor.Role.String() + "+superuser"
	}
	return actor.Role.String()
}

// NewService seeds the enforcer with every allowed (subject, resource, verb)
// triple derived from access.CanAccessCollection.
func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	s := &service{enforcer: enforcer, logger: l}
	if err := s.seed(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) seed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	count := 0
	for _, role := range access.Roles {
		for _, superuser := range []bool{false, true} {
			probe := access.Actor{UserID: uuid.New(), Role: role, IsSuperuser: superuser, IsStaff: superuser}
			for _, res := range access.Resources {
				for _, v := range verbs {
					if !access.CanAccessCollection(probe, res, v).Allowed {
						continue
					}
					if _, err := s.enforcer.AddPolicy(SubjectKey(probe), string(res), v.String()); err != nil {
						return fmt.Errorf("seed rbac policy: %w", err)
					}
					count++
				}
			}
		}
	}

	s.logger.Info("rbac policies seeded", zap.Int("count", count))
	return nil
}

func (s *service) Enforce(actor access.Actor, res access.Resource, verb access.Verb) (bool, error) {
	if !actor.Authenticated() {
		return false, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(SubjectKey(actor), string(res), verb.String())
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("subject", SubjectKey(actor)),
			zap.String("resource", string(res)),
			zap.String("verb", verb.String()),
			zap.Error(err),
		)
		return false, err
	}
	return allowed, nil
}

func (s *service) Policies() ([]PolicyResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rules, err := s.enforcer.GetPolicy()
	if err != nil {
		return nil, err
	}

	out := make([]PolicyResponse, 0, len(rules))
	for _, rule := range rules {
		if len(rule) < 3 {
			continue
		}
		out = append(out, PolicyResponse{Subject: rule[0], Resource: rule[1], Action: rule[2]})
	}
	return out, nil
}
