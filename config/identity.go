package config

import (
	"github.com/yeetaryan/StackIt/model"
	"github.com/yeetaryan/StackIt/repository"
	"github.com/yeetaryan/StackIt/utils"
)

// CurrentUser resolves the signed-in user. Real authentication is
// delegated to an external identity provider; until one is plugged in,
// the seeded mock user is used, with env overrides for local testing.
// The active flag is the sole gate for write operations.
func CurrentUser() model.User {
	user := repository.SeedUser()
	user.ID = utils.GetEnvAsString("STACKIT_USER_ID", user.ID)
	user.Name = utils.GetEnvAsString("STACKIT_USER_NAME", user.Name)
	user.IsActive = utils.GetEnvAsBool("STACKIT_USER_ACTIVE", user.IsActive)
	return user
}
