package controller

import (
	"errors"

	"twi_edu_backend/internal/service"
	"twi_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DictionaryController struct {
	WordService *service.WordService
}

func NewDictionaryController(wordService *service.WordService) *DictionaryController {
	return &DictionaryController{WordService: wordService}
}

// GetWords godoc
// @Summary 词典列表/搜索
// @Description 不带search参数时按字母序返回全部词条；带search时模糊搜索，完全匹配的词条排最前
// @Tags 词典
// @Produce json
// @Security ApiKeyAuth
// @Param search query string false "搜索词"
// @Success 200 {object} util.Response{data=[]model.Word}
// @Router /api/dictionary/words [get]
func (c *DictionaryController) GetWords(ctx *gin.Context) {
	keyword := ctx.Query("search")

	var err error
	var words interface{}
	if keyword == "" {
		words, err = c.WordService.ListWords()
	} else {
		words, err = c.WordService.SearchWords(keyword)
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, words)
}

// GetWordDetail godoc
// @Summary 词条详情
// @Tags 词典
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "词条ID"
// @Success 200 {object} util.Response{data=model.Word}
// @Failure 404 {object} util.Response "词条不存在"
// @Router /api/dictionary/words/{id} [get]
func (c *DictionaryController) GetWordDetail(ctx *gin.Context) {
	id := util.ParamID(ctx)

	word, err := c.WordService.GetWord(id)
	if err != nil {
		if errors.Is(err, util.ErrWordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, word)
}
