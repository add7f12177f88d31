// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ecodeclub/mockinterview/internal/interview"
	"github.com/ecodeclub/mockinterview/internal/session/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"
)

var (
	ErrSessionClosed     = errors.New("面试会话已经结束")
	ErrInvalidState      = errors.New("当前状态不允许该操作")
	ErrAlreadyStarted    = errors.New("面试会话已经开始")
	ErrNoQuestions       = errors.New("面试没有题目")
	ErrInvalidMediaKind  = errors.New("不支持的媒体类型")
	ErrInterviewNotFound = interview.ErrInterviewNotFound
)

const subscriberBuffer = 16

// Controller 一场面试的会话。所有状态变更都在同一个事件循环里串行执行，
// 网络请求和定时器在别的 goroutine 里完成之后把结果投递回事件循环。
// 同一时刻只有一道题在进行中。
type Controller struct {
	id          string
	interviewID int64
	uid         int64
	cfg         Config
	deps        Deps
	logger      *elog.Component

	cmds chan func()
	done chan struct{}
	// ctx 会话的生命周期，结束时取消
	ctx    context.Context
	cancel context.CancelFunc

	// 下面的字段只在事件循环里读写
	state domain.State
	// step 每次状态变化加一，异步结果回来的时候用它判断是否已经过期
	step        uint64
	started     bool
	questions   []interview.Question
	index       int
	perms       domain.Permissions
	stream      Stream
	recognizer  Recognizer
	timer       *time.Timer
	pollCancel  context.CancelFunc
	recordStart time.Time
	draft       string
	avatarURL   string
	avatarErr   string
	lastErr     string
	degraded    bool
	redirect    string

	mu         sync.RWMutex
	snap       domain.Snapshot
	subs       map[int]chan domain.Snapshot
	nextSub    int
	closed     bool
	lastActive time.Time
}

func New(cfg Config, deps Deps, interviewID, uid int64) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	id := shortuuid.New()
	c := &Controller{
		id:          id,
		interviewID: interviewID,
		uid:         uid,
		cfg:         cfg,
		deps:        deps,
		logger: elog.DefaultLogger.With(elog.FieldComponent("SessionController"),
			elog.String("sessionId", id), elog.Int64("interviewId", interviewID)),
		cmds:       make(chan func()),
		done:       make(chan struct{}),
		ctx:        ctx,
		cancel:     cancel,
		state:      domain.StateLoading,
		subs:       make(map[int]chan domain.Snapshot),
		lastActive: time.Now(),
	}
	c.publish()
	go c.loop()
	return c
}

func (c *Controller) ID() string {
	return c.id
}

func (c *Controller) InterviewID() int64 {
	return c.interviewID
}

func (c *Controller) Uid() int64 {
	return c.uid
}

// Done 会话结束之后关闭
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

func (c *Controller) LastActive() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastActive
}

func (c *Controller) Snapshot() domain.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// Subscribe 订阅状态变化，第一条是当前状态。会话结束后 channel 会被关闭。
// 消费太慢的时候会丢掉旧的状态，只保留最新的
func (c *Controller) Subscribe() (<-chan domain.Snapshot, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch := make(chan domain.Snapshot, subscriberBuffer)
	ch <- c.snap
	if c.closed {
		close(ch)
		return ch, func() {}
	}
	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch
	return ch, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if sub, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(sub)
		}
	}
}

// Start 加载面试和续答位置，续答位置以已经保存的回答为准。
// 这一步不会碰录制设备
func (c *Controller) Start(ctx context.Context) error {
	loaded := make(chan error, 1)
	err := c.do(ctx, func() error {
		if c.started {
			return ErrAlreadyStarted
		}
		c.started = true
		step := c.step
		go func() {
			intr, next, err := c.load()
			c.post(func() {
				loaded <- c.onLoaded(step, intr, next, err)
			})
		}()
		return nil
	})
	if err != nil {
		return err
	}
	select {
	case err = <-loaded:
		return err
	case <-c.done:
		select {
		case err = <-loaded:
			return err
		default:
			return ErrSessionClosed
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// GrantPermissions 用户同意或者拒绝授权，两个都拒绝也可以继续
func (c *Controller) GrantPermissions(ctx context.Context, perms domain.Permissions) error {
	return c.do(ctx, func() error {
		if c.state != domain.StateAwaitingPermissions {
			return ErrInvalidState
		}
		c.perms = perms
		if perms.Any() && c.deps.Devices != nil {
			stream, err := c.deps.Devices.Acquire(c.ctx, perms)
			if err != nil {
				c.logger.Warn("获取录制设备失败，继续面试", elog.FieldErr(err),
					elog.Any("permissions", perms))
			} else {
				c.stream = stream
			}
		}
		c.enterAvatarSpeaking()
		return nil
	})
}

// AppendTranscript 语音识别的片段，只在录制的时候生效
func (c *Controller) AppendTranscript(ctx context.Context, text string) error {
	return c.do(ctx, func() error {
		if c.state != domain.StateRecording || c.recognizer == nil {
			return nil
		}
		c.recognizer.Feed(text)
		c.publish()
		return nil
	})
}

// UpdateDraft 用户手动输入的回答，模拟录制结束的时候会用它
func (c *Controller) UpdateDraft(ctx context.Context, text string) error {
	return c.do(ctx, func() error {
		if c.state != domain.StateRecording {
			return nil
		}
		c.draft = text
		return nil
	})
}

// AppendMedia 录制的数据分片，只在录制的时候生效
func (c *Controller) AppendMedia(ctx context.Context, kind domain.MediaKind, chunk []byte) error {
	if !kind.Valid() {
		return ErrInvalidMediaKind
	}
	return c.do(ctx, func() error {
		if c.state != domain.StateRecording || c.stream == nil {
			return nil
		}
		return c.stream.Append(kind, chunk)
	})
}

// AvatarFinished 前端播放完数字人视频，不再等满 SpeakWindow 直接开始录制。
// 视频还没有生成出来或者已经不在播放阶段的时候忽略
func (c *Controller) AvatarFinished(ctx context.Context) error {
	return c.do(ctx, func() error {
		if c.state != domain.StateAvatarSpeaking || c.avatarURL == "" {
			return nil
		}
		c.stopTimer()
		c.enterRecording()
		return nil
	})
}

// Stop 用户结束这道题的回答
func (c *Controller) Stop(ctx context.Context, manualText string) error {
	return c.do(ctx, func() error {
		if c.state != domain.StateRecording {
			return ErrInvalidState
		}
		c.stopRecording(manualText)
		return nil
	})
}

// Leave 离开面试，任何状态都可以调用，重复调用没有副作用。
// 正在录制的回答直接丢弃
func (c *Controller) Leave(ctx context.Context) error {
	err := c.do(ctx, func() error {
		c.redirect = "/"
		c.setState(domain.StateLeft)
		return nil
	})
	if errors.Is(err, ErrSessionClosed) {
		return nil
	}
	return err
}

func (c *Controller) loop() {
	defer close(c.done)
	for {
		fn := <-c.cmds
		fn()
		if c.state.Terminal() {
			c.release()
			c.closeSubs()
			return
		}
	}
}

// do 在事件循环里执行 fn 并等待结果
func (c *Controller) do(ctx context.Context, fn func() error) error {
	c.touch()
	res := make(chan error, 1)
	select {
	case c.cmds <- func() { res <- fn() }:
	case <-c.done:
		return ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-res:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// post 把异步结果投递回事件循环，会话结束之后直接丢弃
func (c *Controller) post(fn func()) {
	select {
	case c.cmds <- fn:
	case <-c.done:
	}
}

// after 延迟执行 fn，期间状态变化过就不执行。同一时刻只有一个定时器
func (c *Controller) after(d time.Duration, fn func()) {
	c.stopTimer()
	step := c.step
	c.timer = time.AfterFunc(d, func() {
		c.post(func() {
			if c.step != step {
				return
			}
			fn()
		})
	})
}

func (c *Controller) load() (interview.Interview, int, error) {
	intr, err := c.deps.Gateway.Detail(c.ctx, c.interviewID)
	if err != nil {
		return interview.Interview{}, 0, err
	}
	if intr.Uid != c.uid {
		return interview.Interview{}, 0, ErrInterviewNotFound
	}
	next, err := c.deps.Gateway.NextQuestionIndex(c.ctx, c.interviewID)
	return intr, next, err
}

func (c *Controller) onLoaded(step uint64, intr interview.Interview, next int, err error) error {
	if c.step != step {
		return ErrSessionClosed
	}
	if err != nil {
		c.logger.Error("加载面试失败", elog.FieldErr(err))
		c.lastErr = err.Error()
		c.setState(domain.StateComplete)
		return err
	}
	c.questions = intr.Questions()
	if len(c.questions) == 0 {
		c.lastErr = ErrNoQuestions.Error()
		c.setState(domain.StateComplete)
		return ErrNoQuestions
	}
	c.index = max(next, 0)
	if c.index >= len(c.questions) {
		if intr.Status == interview.StatusCompleted {
			// 已经评估过了，直接去总结页
			c.redirect = fmt.Sprintf("/interview/%d/summary", c.interviewID)
			c.setState(domain.StateComplete)
			return nil
		}
		// 答完了但是上次没有走完收尾
		c.enterFinalizing()
		return nil
	}
	c.setState(domain.StateAwaitingPermissions)
	return nil
}

func (c *Controller) enterAvatarSpeaking() {
	c.avatarURL, c.avatarErr = "", ""
	c.setState(domain.StateAvatarSpeaking)
	step := c.step
	text := c.questions[c.index].Text
	pollCtx, cancel := context.WithCancel(c.ctx)
	c.pollCancel = cancel
	go func() {
		url, err := c.speak(pollCtx, text)
		c.post(func() {
			if c.step != step {
				return
			}
			c.onAvatar(url, err)
		})
	}()
}

func (c *Controller) speak(ctx context.Context, text string) (string, error) {
	res, err := c.deps.Avatar.Request(ctx, text, c.id)
	if err != nil {
		return "", err
	}
	if res.ResultURL != "" {
		return res.ResultURL, nil
	}
	if res.TalkID == "" {
		return "", errors.New("数字人没有返回视频地址")
	}
	out := c.deps.Avatar.Wait(ctx, res.TalkID)
	if out.OK() {
		return out.ResultURL, nil
	}
	if out.Err != nil {
		return "", fmt.Errorf("数字人生成失败 %s: %w", out.Kind, out.Err)
	}
	return "", fmt.Errorf("数字人生成失败: %s", out.Kind)
}

func (c *Controller) onAvatar(url string, err error) {
	c.stopPoll()
	if err != nil {
		c.logger.Warn("数字人失败，只显示字幕", elog.FieldErr(err), elog.Int64("index", int64(c.index)))
		c.avatarErr = err.Error()
		c.degraded = true
		c.publish()
		c.after(c.cfg.FailureDelay, c.enterRecording)
		return
	}
	c.avatarURL = url
	c.publish()
	c.after(c.cfg.SpeakWindow, c.enterRecording)
}

func (c *Controller) enterRecording() {
	c.draft = ""
	c.recordStart = time.Now()
	c.setState(domain.StateRecording)
	if c.perms.Audio && c.deps.Speech != nil {
		rec, err := c.deps.Speech.New(c.ctx)
		if err != nil {
			c.logger.Warn("启动语音识别失败", elog.FieldErr(err))
		} else {
			c.recognizer = rec
		}
	}
	if !c.perms.Any() {
		// 纯文本模式，等用户提交
		return
	}
	if c.stream == nil {
		// 有授权但是拿不到设备，模拟一段录制之后自动结束
		c.after(c.cfg.SimulatedCapture, func() {
			c.stopRecording(c.draft)
		})
		return
	}
	if err := c.stream.Begin(); err != nil {
		c.logger.Warn("开始录制失败", elog.FieldErr(err), elog.Int64("index", int64(c.index)))
		c.lastErr = err.Error()
		c.degraded = true
		c.publish()
	}
}

func (c *Controller) stopRecording(manualText string) {
	c.stopTimer()
	var transcript string
	if c.recognizer != nil {
		transcript = c.recognizer.Stop()
		c.recognizer = nil
	}
	var blobs map[domain.MediaKind][]byte
	if c.stream != nil {
		blobs = c.stream.End()
	}
	text := strings.TrimSpace(transcript)
	if text == "" {
		text = strings.TrimSpace(manualText)
	}
	if text == "" {
		text = strings.TrimSpace(c.draft)
	}
	resp := interview.Response{
		InterviewID:   c.interviewID,
		QuestionIndex: c.index,
		QuestionText:  c.questions[c.index].Text,
		ResponseText:  text,
		Uid:           c.uid,
		Duration:      int64(time.Since(c.recordStart).Seconds()),
	}
	c.setState(domain.StateUploading)
	step := c.step
	go func() {
		err := c.commit(resp, blobs)
		c.post(func() {
			if c.step != step {
				return
			}
			c.onCommitted(err)
		})
	}()
}

// commit 上传录音录像并保存回答。离开会话不会中断这里的请求
func (c *Controller) commit(resp interview.Response, blobs map[domain.MediaKind][]byte) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.ctx), c.cfg.CommitTimeout)
	defer cancel()
	now := time.Now().UnixMilli()
	folder := fmt.Sprintf("interviews/%d", c.interviewID)
	var eg errgroup.Group
	eg.Go(func() error {
		resp.AudioURL = c.upload(ctx, folder, domain.MediaAudio, blobs[domain.MediaAudio], now)
		return nil
	})
	eg.Go(func() error {
		resp.VideoURL = c.upload(ctx, folder, domain.MediaVideo, blobs[domain.MediaVideo], now)
		return nil
	})
	_ = eg.Wait()
	resp.Timestamp = time.Now().UnixMilli()
	_, err := c.deps.Gateway.SaveResponse(ctx, resp)
	return err
}

func (c *Controller) upload(ctx context.Context, folder string, kind domain.MediaKind, data []byte, now int64) string {
	if len(data) == 0 || c.deps.Storage == nil {
		return ""
	}
	name := fmt.Sprintf("%s_%d_response.webm", kind, now)
	url, err := c.deps.Storage.Upload(ctx, folder, name, data)
	if err != nil {
		c.logger.Error("上传录制文件失败", elog.FieldErr(err), elog.String("kind", string(kind)))
		return ""
	}
	return url
}

func (c *Controller) onCommitted(err error) {
	if err != nil {
		c.logger.Error("保存回答失败", elog.FieldErr(err), elog.Int64("index", int64(c.index)))
		c.lastErr = err.Error()
		c.degraded = true
	}
	// 保存失败也不回退
	c.index++
	if c.index < len(c.questions) {
		c.publish()
		c.after(c.cfg.SettleDelay, c.enterAvatarSpeaking)
		return
	}
	c.enterFinalizing()
}

// enterFinalizing 触发评估并标记面试完成，失败只记录日志
func (c *Controller) enterFinalizing() {
	c.setState(domain.StateFinalizing)
	step := c.step
	go func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(c.ctx), c.cfg.CommitTimeout)
		defer cancel()
		var errs []error
		if c.deps.Finisher != nil {
			if err := c.deps.Finisher.Finish(ctx, c.interviewID, c.uid); err != nil {
				c.logger.Error("触发面试评估失败", elog.FieldErr(err))
				errs = append(errs, err)
			}
		}
		if err := c.deps.Gateway.Complete(ctx, c.interviewID); err != nil {
			c.logger.Error("标记面试完成失败", elog.FieldErr(err))
			errs = append(errs, err)
		}
		err := errors.Join(errs...)
		c.post(func() {
			if c.step != step {
				return
			}
			if err != nil {
				c.lastErr = err.Error()
				c.degraded = true
			}
			c.redirect = fmt.Sprintf("/interview/%d/summary", c.interviewID)
			c.setState(domain.StateComplete)
		})
	}()
}

func (c *Controller) setState(s domain.State) {
	c.state = s
	c.step++
	c.publish()
}

func (c *Controller) stopTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) stopPoll() {
	if c.pollCancel != nil {
		c.pollCancel()
		c.pollCancel = nil
	}
}

// release 会话结束时释放所有资源
func (c *Controller) release() {
	c.stopTimer()
	c.stopPoll()
	if c.recognizer != nil {
		c.recognizer.Stop()
		c.recognizer = nil
	}
	if c.stream != nil {
		c.stream.Release()
		c.stream = nil
	}
	c.cancel()
}

func (c *Controller) touch() {
	c.mu.Lock()
	c.lastActive = time.Now()
	c.mu.Unlock()
}

func (c *Controller) publish() {
	snap := domain.Snapshot{
		SessionID:   c.id,
		InterviewID: c.interviewID,
		State:       c.state,
		Index:       c.index,
		Total:       len(c.questions),
		Permissions: c.perms,
		AvatarURL:   c.avatarURL,
		AvatarError: c.avatarErr,
		Degraded:    c.degraded,
		LastError:   c.lastErr,
		Redirect:    c.redirect,
		Utime:       time.Now().UnixMilli(),
	}
	if c.index < len(c.questions) {
		snap.Question = c.questions[c.index].Text
	}
	if c.recognizer != nil {
		snap.Transcript = c.recognizer.Transcript()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = snap
	for _, ch := range c.subs {
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
}

func (c *Controller) closeSubs() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	for id, ch := range c.subs {
		delete(c.subs, id)
		close(ch)
	}
}
