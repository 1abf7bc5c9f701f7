// handlers/member_handlers.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hisaab-app/hisaab-backend/models"
	"github.com/hisaab-app/hisaab-backend/utils"
)

// AddMember handles adding a member to a group
func AddMember(c *gin.Context) {
	var request models.AddMemberRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Invalid request"))
		return
	}

	member, err := handlerServices.GroupService.AddMember(request.GroupID, request.Name)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, member)
}

// RemoveMember handles removing a member. Any expense referencing the member
// as payer or participant is deleted along with them.
func RemoveMember(c *gin.Context) {
	var request models.RemoveMemberRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Invalid request"))
		return
	}

	if err := handlerServices.GroupService.RemoveMember(request.GroupID, request.MemberID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"removed": request.MemberID})
}
