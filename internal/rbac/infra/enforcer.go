package infra

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// collectionModel matches a subject (role plus superuser flag) against
// resource and verb. Policies are seeded in memory by rbac.NewService.
const collectionModel = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(collectionModel)
	if err != nil {
		return nil, err
	}
	return casbin.NewEnforcer(m)
}
