package services

import (
	"testing"
	"time"

	"second-brain-server/models"
	"second-brain-server/repositories"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ContentServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service ContentService
	tags    TagService
	owner   *models.User
	other   *models.User
}

func (suite *ContentServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())

	contentRepo := repositories.NewContentRepository(suite.db)
	tagRepo := repositories.NewTagRepository(suite.db)
	suite.service = NewContentService(contentRepo, tagRepo)
	suite.tags = NewTagService(tagRepo)

	suite.owner = suite.createUser("alice", "alice@example.com")
	suite.other = suite.createUser("bob", "bob@example.com")
}

func (suite *ContentServiceTestSuite) createUser(username, email string) *models.User {
	user := &models.User{Username: username, Email: email, Password: "hash"}
	suite.Require().NoError(suite.db.Create(user).Error)
	return user
}

func (suite *ContentServiceTestSuite) createTag(title string) *models.Tag {
	tag, _, err := suite.tags.CreateOrGet(title)
	suite.Require().NoError(err)
	return tag
}

func (suite *ContentServiceTestSuite) createContent(ownerID uint, req models.CreateContentRequest) *models.Content {
	content, err := suite.service.Create(ownerID, req)
	suite.Require().NoError(err)
	return content
}

func strPtr(s string) *string {
	return &s
}

func (suite *ContentServiceTestSuite) TestCreateAssignsOwnerAndPersists() {
	created := suite.createContent(suite.owner.ID, models.CreateContentRequest{
		Title:       "Go proverbs",
		Description: "Rob Pike's talk",
		Type:        "video",
		Link:        strPtr("https://example.com/talk"),
	})

	suite.Equal(suite.owner.ID, created.UserID)

	fetched, err := suite.service.GetByID(suite.owner.ID, created.ID)
	suite.NoError(err)
	suite.Equal("Go proverbs", fetched.Title)
	suite.Equal(models.TypeVideo, fetched.Type)
	suite.Equal(suite.owner.Username, fetched.User.Username)
}

func (suite *ContentServiceTestSuite) TestCreateRequiresFields() {
	_, err := suite.service.Create(suite.owner.ID, models.CreateContentRequest{
		Title: "no description", Type: "article",
	})
	suite.IsType(models.ErrorValidation{}, err)
}

func (suite *ContentServiceTestSuite) TestCreateRejectsUnknownTypeWithoutPersisting() {
	_, err := suite.service.Create(suite.owner.ID, models.CreateContentRequest{
		Title: "t", Description: "d", Type: "bogus-type",
	})
	suite.IsType(models.ErrorValidation{}, err)

	var count int64
	suite.NoError(suite.db.Model(&models.Content{}).Count(&count).Error)
	suite.Equal(int64(0), count)
}

func (suite *ContentServiceTestSuite) TestCreateRejectsUnknownTagIDsWithoutPersisting() {
	tag := suite.createTag("go")

	_, err := suite.service.Create(suite.owner.ID, models.CreateContentRequest{
		Title: "t", Description: "d", Type: "article", TagIDs: []uint{tag.ID, 999},
	})
	suite.IsType(models.ErrorNotFound{}, err)

	var count int64
	suite.NoError(suite.db.Model(&models.Content{}).Count(&count).Error)
	suite.Equal(int64(0), count)
}

func (suite *ContentServiceTestSuite) TestCreateEmptyLinkStoredAsNull() {
	created := suite.createContent(suite.owner.ID, models.CreateContentRequest{
		Title: "t", Description: "d", Type: "other", Link: strPtr(""),
	})
	suite.Nil(created.Link)
}

func (suite *ContentServiceTestSuite) TestDuplicateTagIDsAttachOnce() {
	tag := suite.createTag("go")

	created := suite.createContent(suite.owner.ID, models.CreateContentRequest{
		Title: "t", Description: "d", Type: "article", TagIDs: []uint{tag.ID, tag.ID},
	})
	suite.Len(created.Tags, 1)
	suite.Equal(tag.ID, created.Tags[0].ID)
}

func (suite *ContentServiceTestSuite) TestCrossUserAccessLooksLikeNotFound() {
	created := suite.createContent(suite.other.ID, models.CreateContentRequest{
		Title: "bob's", Description: "d", Type: "article",
	})

	_, err := suite.service.GetByID(suite.owner.ID, created.ID)
	suite.IsType(models.ErrorNotFound{}, err)

	_, err = suite.service.Update(suite.owner.ID, created.ID, models.UpdateContentRequest{Title: strPtr("stolen")})
	suite.IsType(models.ErrorNotFound{}, err)

	err = suite.service.Delete(suite.owner.ID, created.ID)
	suite.IsType(models.ErrorNotFound{}, err)

	// Untouched for the real owner.
	fetched, err := suite.service.GetByID(suite.other.ID, created.ID)
	suite.NoError(err)
	suite.Equal("bob's", fetched.Title)
}

func (suite *ContentServiceTestSuite) TestListNewestFirstAndScopedToOwner() {
	first := suite.createContent(suite.owner.ID, models.CreateContentRequest{
		Title: "older", Description: "d", Type: "article",
	})
	time.Sleep(5 * time.Millisecond)
	second := suite.createContent(suite.owner.ID, models.CreateContentRequest{
		Title: "newer", Description: "d", Type: "video",
	})
	suite.createContent(suite.other.ID, models.CreateContentRequest{
		Title: "bob's", Description: "d", Type: "article",
	})

	contents, err := suite.service.ListForOwner(suite.owner.ID, models.ContentListParams{})
	suite.NoError(err)
	suite.Len(contents, 2)
	suite.Equal(second.ID, contents[0].ID)
	suite.Equal(first.ID, contents[1].ID)
}

func (suite *ContentServiceTestSuite) TestFilterComposition() {
	goTag := suite.createTag("go")
	dbTag := suite.createTag("databases")

	suite.createContent(suite.owner.ID, models.CreateContentRequest{
		Title: "Foo fighters of Go", Description: "concurrency", Type: "article", TagIDs: []uint{goTag.ID},
	})
	suite.createContent(suite.owner.ID, models.CreateContentRequest{
		Title: "Postgres internals", Description: "contains Foo somewhere", Type: "video", TagIDs: []uint{dbTag.ID},
	})
	suite.createContent(suite.owner.ID, models.CreateContentRequest{
		Title: "Unrelated", Description: "nothing here", Type: "video",
	})

	byType, err := suite.service.ListByType(suite.owner.ID, models.TypeVideo, models.ContentListParams{})
	suite.NoError(err)
	suite.Len(byType, 2)
	for _, content := range byType {
		suite.Equal(models.TypeVideo, content.Type)
	}

	byTag, err := suite.service.ListForOwner(suite.owner.ID, models.ContentListParams{TagID: goTag.ID})
	suite.NoError(err)
	suite.Len(byTag, 1)
	suite.Equal("Foo fighters of Go", byTag[0].Title)

	// Case-insensitive substring against title OR description.
	bySearch, err := suite.service.ListForOwner(suite.owner.ID, models.ContentListParams{Search: "foo"})
	suite.NoError(err)
	suite.Len(bySearch, 2)

	combined, err := suite.service.ListByType(suite.owner.ID, models.TypeVideo, models.ContentListParams{
		TagID: dbTag.ID, Search: "foo",
	})
	suite.NoError(err)
	suite.Len(combined, 1)
	suite.Equal("Postgres internals", combined[0].Title)
}

func (suite *ContentServiceTestSuite) TestUpdatePatchSemantics() {
	t1 := suite.createTag("t1")
	t2 := suite.createTag("t2")

	created := suite.createContent(suite.owner.ID, models.CreateContentRequest{
		Title: "orig", Description: "orig desc", Type: "article",
		Link: strPtr("https://example.com"), TagIDs: []uint{t1.ID, t2.ID},
	})
	suite.Len(created.Tags, 2)

	// Patch without tagIds leaves tags untouched.
	updated, err := suite.service.Update(suite.owner.ID, created.ID, models.UpdateContentRequest{
		Title: strPtr("new"),
	})
	suite.NoError(err)
	suite.Equal("new", updated.Title)
	suite.Equal("orig desc", updated.Description)
	suite.Len(updated.Tags, 2)

	// Explicit empty tagIds clears the whole association.
	empty := []uint{}
	updated, err = suite.service.Update(suite.owner.ID, created.ID, models.UpdateContentRequest{
		TagIDs: &empty,
	})
	suite.NoError(err)
	suite.Len(updated.Tags, 0)

	// Tags survive in the tags table.
	var tagCount int64
	suite.NoError(suite.db.Model(&models.Tag{}).Count(&tagCount).Error)
	suite.Equal(int64(2), tagCount)

	// Replacement is a full set swap, never a merge.
	replacement := []uint{t2.ID}
	updated, err = suite.service.Update(suite.owner.ID, created.ID, models.UpdateContentRequest{
		TagIDs: &replacement,
	})
	suite.NoError(err)
	suite.Len(updated.Tags, 1)
	suite.Equal(t2.ID, updated.Tags[0].ID)
}

func (suite *ContentServiceTestSuite) TestUpdateRejectsUnknownTagIDsKeepingOldTags() {
	t1 := suite.createTag("t1")

	created := suite.createContent(suite.owner.ID, models.CreateContentRequest{
		Title: "t", Description: "d", Type: "article", TagIDs: []uint{t1.ID},
	})

	bad := []uint{t1.ID, 999}
	_, err := suite.service.Update(suite.owner.ID, created.ID, models.UpdateContentRequest{TagIDs: &bad})
	suite.IsType(models.ErrorNotFound{}, err)

	// Resolution happens before any write, so the old set is intact.
	fetched, err := suite.service.GetByID(suite.owner.ID, created.ID)
	suite.NoError(err)
	suite.Len(fetched.Tags, 1)
}

func (suite *ContentServiceTestSuite) TestUpdateRejectsInvalidType() {
	created := suite.createContent(suite.owner.ID, models.CreateContentRequest{
		Title: "t", Description: "d", Type: "article",
	})

	_, err := suite.service.Update(suite.owner.ID, created.ID, models.UpdateContentRequest{
		Type: strPtr("magazine"),
	})
	suite.IsType(models.ErrorValidation{}, err)

	fetched, err := suite.service.GetByID(suite.owner.ID, created.ID)
	suite.NoError(err)
	suite.Equal(models.TypeArticle, fetched.Type)
}

func (suite *ContentServiceTestSuite) TestNoOpPatchRoundTrip() {
	tag := suite.createTag("t1")
	created := suite.createContent(suite.owner.ID, models.CreateContentRequest{
		Title: "t", Description: "d", Type: "book",
		Link: strPtr("https://example.com/book"), TagIDs: []uint{tag.ID},
	})

	updated, err := suite.service.Update(suite.owner.ID, created.ID, models.UpdateContentRequest{})
	suite.NoError(err)

	suite.Equal(created.Title, updated.Title)
	suite.Equal(created.Description, updated.Description)
	suite.Equal(created.Type, updated.Type)
	suite.Require().NotNil(updated.Link)
	suite.Equal(*created.Link, *updated.Link)
	suite.Len(updated.Tags, 1)
}

func (suite *ContentServiceTestSuite) TestDeleteRemovesContentAndAssociationsOnly() {
	tag := suite.createTag("t1")
	created := suite.createContent(suite.owner.ID, models.CreateContentRequest{
		Title: "t", Description: "d", Type: "podcast", TagIDs: []uint{tag.ID},
	})

	suite.NoError(suite.service.Delete(suite.owner.ID, created.ID))

	_, err := suite.service.GetByID(suite.owner.ID, created.ID)
	suite.IsType(models.ErrorNotFound{}, err)

	var joinCount int64
	suite.NoError(suite.db.Table("content_tags").Count(&joinCount).Error)
	suite.Equal(int64(0), joinCount)

	var tagCount int64
	suite.NoError(suite.db.Model(&models.Tag{}).Count(&tagCount).Error)
	suite.Equal(int64(1), tagCount)
}

func TestContentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContentServiceTestSuite))
}
