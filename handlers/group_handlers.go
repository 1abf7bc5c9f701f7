// handlers/group_handlers.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hisaab-app/hisaab-backend/models"
	"github.com/hisaab-app/hisaab-backend/utils"
)

// CreateGroup handles the creation of a new group
func CreateGroup(c *gin.Context) {
	var request models.CreateGroupRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Invalid request"))
		return
	}

	group, err := handlerServices.GroupService.CreateGroup(request.Name)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.CreateGroupResponse{GroupID: group.ID})
}

// ListGroups handles listing all groups
func ListGroups(c *gin.Context) {
	utils.HandleSuccess(c, handlerServices.GroupService.ListGroups())
}

// GetGroup handles retrieving a single group by id
func GetGroup(c *gin.Context) {
	var request models.GroupIDRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Invalid request"))
		return
	}

	group, err := handlerServices.GroupService.GetGroup(request.GroupID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, group)
}

// DeleteGroup handles deleting a group and everything it owns
func DeleteGroup(c *gin.Context) {
	var request models.GroupIDRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Invalid request"))
		return
	}

	if err := handlerServices.GroupService.DeleteGroup(request.GroupID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"deleted": request.GroupID})
}
