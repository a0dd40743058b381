package controllers_test

import (
	"fmt"
	"testing"

	"elearn/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserPublic(t *testing.T) {
	app, db, _ := newTestApp(t)

	signup(t, app, "Alice", "a@x.com", "pw1", false)
	var user models.User
	require.NoError(t, db.Where("email = ?", "a@x.com").First(&user).Error)

	resp, err := app.Test(jsonRequest("GET", fmt.Sprintf("/user/%d", user.ID), ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, "a@x.com", data["email"])
	assert.NotContains(t, data, "password")

	missing, err := app.Test(jsonRequest("GET", "/user/99999", ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, missing.StatusCode)
}

func TestUpdateUserOwnershipEnforced(t *testing.T) {
	app, db, _ := newTestApp(t)

	signup(t, app, "Alice", "a@x.com", "pw1", false)
	signup(t, app, "Bob", "b@x.com", "pw2", false)

	var bob models.User
	require.NoError(t, db.Where("email = ?", "b@x.com").First(&bob).Error)

	cookie := signin(t, app, "a@x.com", "pw1")
	req := jsonRequest("PUT", fmt.Sprintf("/user/%d", bob.ID), `{"name":"Hacked"}`)
	req.AddCookie(cookie)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// No mutation happened.
	var unchanged models.User
	require.NoError(t, db.First(&unchanged, bob.ID).Error)
	assert.Equal(t, "Bob", unchanged.Name)
}

func TestUpdateUserSelf(t *testing.T) {
	app, db, _ := newTestApp(t)

	signup(t, app, "Alice", "a@x.com", "pw1", false)
	var alice models.User
	require.NoError(t, db.Where("email = ?", "a@x.com").First(&alice).Error)

	cookie := signin(t, app, "a@x.com", "pw1")
	req := jsonRequest("PUT", fmt.Sprintf("/user/%d", alice.ID),
		`{"name":"Alice Cooper","avatar":"https://cdn.x.com/a.png"}`)
	req.AddCookie(cookie)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, "Alice Cooper", data["name"])
	assert.Equal(t, "https://cdn.x.com/a.png", data["avatar"])
	assert.NotContains(t, data, "password")
}

func TestUpdatePassword(t *testing.T) {
	app, db, _ := newTestApp(t)

	signup(t, app, "Alice", "a@x.com", "pw1", false)
	signup(t, app, "Bob", "b@x.com", "pw2", false)

	var alice, bob models.User
	require.NoError(t, db.Where("email = ?", "a@x.com").First(&alice).Error)
	require.NoError(t, db.Where("email = ?", "b@x.com").First(&bob).Error)

	cookie := signin(t, app, "a@x.com", "pw1")

	// Changing someone else's password is forbidden.
	other := jsonRequest("PUT", fmt.Sprintf("/user/%d/password", bob.ID), `{"password":"pw3"}`)
	other.AddCookie(cookie)
	resp, err := app.Test(other)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Changing your own succeeds and takes effect at signin.
	own := jsonRequest("PUT", fmt.Sprintf("/user/%d/password", alice.ID), `{"password":"pw9"}`)
	own.AddCookie(cookie)
	resp, err = app.Test(own)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	stale, err := app.Test(jsonRequest("POST", "/auth/signin", `{"email":"a@x.com","password":"pw1"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, stale.StatusCode)
	signin(t, app, "a@x.com", "pw9")
}

func TestDeleteUserCascadesEnrollments(t *testing.T) {
	app, db, _ := newTestApp(t)

	signup(t, app, "Alice", "a@x.com", "pw1", false)
	var alice models.User
	require.NoError(t, db.Where("email = ?", "a@x.com").First(&alice).Error)

	course := models.Course{Title: "Go", Description: "Intro", Category: "programming", Level: models.LevelBeginner}
	require.NoError(t, db.Create(&course).Error)

	cookie := signin(t, app, "a@x.com", "pw1")
	enroll := jsonRequest("POST", fmt.Sprintf("/enroll/%d", course.ID), "")
	enroll.AddCookie(cookie)
	resp, err := app.Test(enroll)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	del := jsonRequest("DELETE", fmt.Sprintf("/user/%d", alice.ID), "")
	del.AddCookie(cookie)
	resp, err = app.Test(del)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var users, enrollments int64
	db.Unscoped().Model(&models.User{}).Where("id = ?", alice.ID).Count(&users)
	db.Unscoped().Model(&models.Enrollment{}).Where("user_id = ?", alice.ID).Count(&enrollments)
	assert.Zero(t, users)
	assert.Zero(t, enrollments, "deleting a user must leave no orphaned enrollments")
}

func TestDeleteUserOwnershipEnforced(t *testing.T) {
	app, db, _ := newTestApp(t)

	signup(t, app, "Alice", "a@x.com", "pw1", false)
	signup(t, app, "Bob", "b@x.com", "pw2", false)

	var bob models.User
	require.NoError(t, db.Where("email = ?", "b@x.com").First(&bob).Error)

	cookie := signin(t, app, "a@x.com", "pw1")
	req := jsonRequest("DELETE", fmt.Sprintf("/user/%d", bob.ID), "")
	req.AddCookie(cookie)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var count int64
	db.Model(&models.User{}).Where("id = ?", bob.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}
