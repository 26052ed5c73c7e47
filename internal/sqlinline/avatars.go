package sqlinline

const QInsertAvatar = `--sql 3f39ead2-f2fc-458d-8872-7dd7834f20b9
insert into avatars(
  id,
  user_id,
  name,
  image_url,
  description,
  avatar_type,
  created_at,
  updated_at
) values (
  gen_random_uuid(),
  $1::text,
  $2::text,
  $3::text,
  nullif($4::text, ''),
  $5::text,
  now(),
  now()
) returning id, created_at, updated_at;
`

const QListAvatarsByUser = `--sql cfa84905-1cca-4d99-ad90-34e99862350f
select id, user_id, name, image_url, coalesce(description, ''), avatar_type, created_at, updated_at
from avatars
where user_id = $1::text
order by created_at desc;
`

const QSelectAvatarForUser = `--sql b8ce889a-6ba5-49d7-95e9-04a684d5082c
select id, user_id, name, image_url, coalesce(description, ''), avatar_type, created_at, updated_at
from avatars
where id = $1::uuid and user_id = $2::text
limit 1;
`

const QSelectAvatarsByIDsForUser = `--sql cc6db8c6-aed9-498d-b152-a3ecd8d1fbf4
select id, user_id, name, image_url, coalesce(description, ''), avatar_type, created_at, updated_at
from avatars
where user_id = $1::text and id = any($2::uuid[]);
`

const QUpdateAvatarForUser = `--sql af5f0791-80b5-4ade-8374-70f670340f61
update avatars
set name = coalesce(nullif($3::text, ''), name),
    description = coalesce(nullif($4::text, ''), description),
    avatar_type = coalesce(nullif($5::text, ''), avatar_type),
    updated_at = now()
where id = $1::uuid and user_id = $2::text
returning id, user_id, name, image_url, coalesce(description, ''), avatar_type, created_at, updated_at;
`

const QDeleteAvatarForUser = `--sql 63200b4f-96d6-4f37-a1a0-6f76ab530774
delete from avatars
where id = $1::uuid and user_id = $2::text
returning image_url;
`
